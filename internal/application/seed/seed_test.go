package seed_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/trasteros-pro/internal/application/seed"
	"github.com/tu-usuario/trasteros-pro/internal/domain/entity"
	"github.com/tu-usuario/trasteros-pro/internal/domain/repository"
	"github.com/tu-usuario/trasteros-pro/internal/infrastructure/memory"
	"github.com/tu-usuario/trasteros-pro/internal/infrastructure/records"
)

// Bootstrap N veces produce las mismas colecciones que una sola vez.
func TestBootstrap_Idempotente(t *testing.T) {
	ctx := context.Background()
	store := memory.NewRecordStore()

	require.NoError(t, seed.Bootstrap(ctx, store))
	primera := volcado(t, store)

	for i := 0; i < 3; i++ {
		require.NoError(t, seed.Bootstrap(ctx, store))
	}

	assert.Equal(t, primera, volcado(t, store))
}

func volcado(t *testing.T, store repository.RecordStore) map[string]string {
	t.Helper()
	docs := make(map[string]string)
	for _, clave := range repository.Claves() {
		raw, ok, err := store.Get(context.Background(), clave)
		require.NoError(t, err)
		if ok {
			docs[clave] = string(raw)
		}
	}
	return docs
}

// El bootstrap siembra exactamente el contenido fijo del despliegue nuevo.
func TestBootstrap_ContenidoPorDefecto(t *testing.T) {
	ctx := context.Background()
	store := memory.NewRecordStore()
	require.NoError(t, seed.Bootstrap(ctx, store))

	users, err := records.NewUserRepository(store).List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, entity.RolPropietario, users[0].Role)
	assert.Equal(t, entity.RolInmobiliaria, users[1].Role)
	assert.Equal(t, entity.RolAdministrador, users[2].Role)
	assert.Equal(t, "admin@example.com", users[2].Email)

	trasteros, err := records.NewTrasteroRepository(store).List(ctx)
	require.NoError(t, err)
	require.Len(t, trasteros, seed.NumTrasteros)
	for i, tr := range trasteros {
		assert.Equal(t, i+1, tr.Numero)
		assert.Nil(t, tr.InquilinoID)
		assert.Equal(t, "50", tr.PrecioMensual.String())
		assert.Equal(t, entity.TipoLlaveEstandar, tr.Llaves.Tipo)
		assert.Zero(t, tr.Llaves.Cantidad)
	}

	inquilinos, err := records.NewInquilinoRepository(store).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, inquilinos)

	gastos, err := records.NewGastoRepository(store).List(ctx)
	require.NoError(t, err)
	require.Len(t, gastos, 2)
	assert.Equal(t, "Mantenimiento sistema de alarma", gastos[0].Concepto)
	assert.Equal(t, entity.CategoriaSeguridad, gastos[0].Categoria)
	assert.Equal(t, "Limpieza general de la nave", gastos[1].Concepto)
}

// Una colección presente (aunque esté vacía) no se vuelve a sembrar.
func TestBootstrap_RespetaColeccionesExistentes(t *testing.T) {
	ctx := context.Background()
	store := memory.NewRecordStore()
	gastoRepo := records.NewGastoRepository(store)

	// Clave presente con lista vacía: el bootstrap no debe tocarla.
	require.NoError(t, gastoRepo.SaveAll(ctx, []entity.Gasto{}))
	require.NoError(t, seed.Bootstrap(ctx, store))

	gastos, err := gastoRepo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, gastos, "la guarda es clave-ausente, no lista-vacía")
}

// La pasada demo siembra 3 inquilinos y asigna los trasteros 1, 5 y 10.
func TestDemo_SiembraYAsigna(t *testing.T) {
	ctx := context.Background()
	store := memory.NewRecordStore()
	require.NoError(t, seed.Bootstrap(ctx, store))

	inqRepo := records.NewInquilinoRepository(store)
	trastRepo := records.NewTrasteroRepository(store)

	sembrado, err := seed.Demo(ctx, inqRepo, trastRepo)
	require.NoError(t, err)
	assert.True(t, sembrado)

	inquilinos, err := inqRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, inquilinos, 3)
	assert.Equal(t, "García López", inquilinos[0].Apellidos)

	trasteros, err := trastRepo.List(ctx)
	require.NoError(t, err)
	require.NotNil(t, trasteros[0].InquilinoID)
	assert.Equal(t, "inq_1", *trasteros[0].InquilinoID)
	assert.Equal(t, "1234", trasteros[0].CodigoAlarma)
	require.NotNil(t, trasteros[4].InquilinoID)
	assert.Equal(t, "inq_2", *trasteros[4].InquilinoID)
	assert.False(t, trasteros[4].AlCorrientePago, "el inquilino 2 tiene el pago pendiente")
	require.NotNil(t, trasteros[9].InquilinoID)
	assert.Equal(t, "Reforzada", trasteros[9].Llaves.Tipo)

	// El resto sigue libre.
	assert.Nil(t, trasteros[1].InquilinoID)
	assert.Nil(t, trasteros[31].InquilinoID)
}

// Con inquilinos existentes la pasada demo no hace nada.
func TestDemo_NoReSiembraConInquilinos(t *testing.T) {
	ctx := context.Background()
	store := memory.NewRecordStore()
	require.NoError(t, seed.Bootstrap(ctx, store))

	inqRepo := records.NewInquilinoRepository(store)
	trastRepo := records.NewTrasteroRepository(store)

	_, err := inqRepo.Add(ctx, entity.Inquilino{Nombre: "Real", Apellidos: "Cliente"})
	require.NoError(t, err)

	sembrado, err := seed.Demo(ctx, inqRepo, trastRepo)
	require.NoError(t, err)
	assert.False(t, sembrado)

	inquilinos, err := inqRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, inquilinos, 1)
}

// Comportamiento heredado: si se borran TODOS los inquilinos, la demo vuelve a
// dispararse en la siguiente pasada.
func TestDemo_ReSiembraTrasBorrarTodos(t *testing.T) {
	ctx := context.Background()
	store := memory.NewRecordStore()
	require.NoError(t, seed.Bootstrap(ctx, store))

	inqRepo := records.NewInquilinoRepository(store)
	trastRepo := records.NewTrasteroRepository(store)

	_, err := seed.Demo(ctx, inqRepo, trastRepo)
	require.NoError(t, err)
	require.NoError(t, inqRepo.SaveAll(ctx, []entity.Inquilino{}))

	sembrado, err := seed.Demo(ctx, inqRepo, trastRepo)
	require.NoError(t, err)
	assert.True(t, sembrado, "la guarda es lista-vacía: la demo se reinyecta")
}
