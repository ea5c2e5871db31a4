// Package seed puebla el almacén con los datos por defecto de un despliegue
// nuevo. Hay dos pasadas independientes con guardas distintas:
//
//   - Bootstrap: por colección, siembra el contenido fijo solo si la CLAVE del
//     documento no existe todavía (idempotente entre llamadas).
//   - Demo: siembra inquilinos de demostración solo si la LISTA de inquilinos
//     está vacía, aunque la clave exista. Borrar todos los inquilinos vuelve a
//     disparar esta pasada en el siguiente arranque; es el comportamiento
//     heredado y se conserva tal cual.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/trasteros-pro/internal/domain/entity"
	"github.com/tu-usuario/trasteros-pro/internal/domain/repository"
)

// NumTrasteros es el número de trasteros sembrados en el bootstrap.
const NumTrasteros = 32

var precioPorDefecto = decimal.NewFromInt(50)

// Bootstrap siembra cada colección cuyo documento no exista todavía. Las
// colecciones ya presentes (incluso vacías) no se tocan.
func Bootstrap(ctx context.Context, store repository.RecordStore) error {
	ahora := time.Now()

	if err := sembrarSiAusente(ctx, store, repository.ClaveUsers, usuariosPorDefecto()); err != nil {
		return err
	}
	if err := sembrarSiAusente(ctx, store, repository.ClaveTrasteros, trasterosPorDefecto()); err != nil {
		return err
	}
	if err := sembrarSiAusente(ctx, store, repository.ClaveInquilinos, []entity.Inquilino{}); err != nil {
		return err
	}
	if err := sembrarSiAusente(ctx, store, repository.ClavePagos, []entity.Pago{}); err != nil {
		return err
	}
	if err := sembrarSiAusente(ctx, store, repository.ClaveGastos, gastosDeEjemplo(ahora)); err != nil {
		return err
	}
	return sembrarSiAusente(ctx, store, repository.ClaveHistorial, []entity.Inquilino{})
}

func sembrarSiAusente[T any](ctx context.Context, store repository.RecordStore, clave string, valores []T) error {
	_, ok, err := store.Get(ctx, clave)
	if err != nil {
		return fmt.Errorf("comprobar %s: %w", clave, err)
	}
	if ok {
		return nil
	}
	raw, err := json.Marshal(valores)
	if err != nil {
		return fmt.Errorf("codificar %s: %w", clave, err)
	}
	if err := store.Set(ctx, clave, raw); err != nil {
		return fmt.Errorf("sembrar %s: %w", clave, err)
	}
	return nil
}

// usuariosPorDefecto devuelve las tres cuentas fijas, una por rol.
func usuariosPorDefecto() []entity.User {
	return []entity.User{
		{ID: "user_1", Email: "propietario@example.com", Password: "admin123", Role: entity.RolPropietario, Nombre: "Propietario"},
		{ID: "user_2", Email: "inmobiliaria@example.com", Password: "inmob123", Role: entity.RolInmobiliaria, Nombre: "Inmobiliaria"},
		{ID: "user_3", Email: "admin@example.com", Password: "admin123", Role: entity.RolAdministrador, Nombre: "Administrador"},
	}
}

// trasterosPorDefecto devuelve los 32 trasteros numerados, sin asignar, a
// precio 50 y con cero llaves de tipo estándar.
func trasterosPorDefecto() []entity.Trastero {
	trasteros := make([]entity.Trastero, 0, NumTrasteros)
	for i := 1; i <= NumTrasteros; i++ {
		trasteros = append(trasteros, entity.Trastero{
			ID:              fmt.Sprintf("trastero_%d", i),
			Numero:          i,
			InquilinoID:     nil,
			AlCorrientePago: true,
			PrecioMensual:   precioPorDefecto,
			Llaves:          entity.Llaves{Cantidad: 0, Tipo: entity.TipoLlaveEstandar},
		})
	}
	return trasteros
}

// gastosDeEjemplo devuelve los dos gastos de muestra, fechados hace 15 y 8
// días respecto a ahora.
func gastosDeEjemplo(ahora time.Time) []entity.Gasto {
	return []entity.Gasto{
		{
			ID:        "gasto_1",
			Fecha:     entity.FechaDe(ahora.AddDate(0, 0, -15)),
			Concepto:  "Mantenimiento sistema de alarma",
			Monto:     decimal.NewFromInt(120),
			Categoria: entity.CategoriaSeguridad,
		},
		{
			ID:        "gasto_2",
			Fecha:     entity.FechaDe(ahora.AddDate(0, 0, -8)),
			Concepto:  "Limpieza general de la nave",
			Monto:     decimal.NewFromInt(200),
			Categoria: entity.CategoriaLimpieza,
		},
	}
}
