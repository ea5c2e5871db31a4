package seed

import (
	"context"
	"time"

	"github.com/tu-usuario/trasteros-pro/internal/domain/entity"
	"github.com/tu-usuario/trasteros-pro/internal/domain/repository"
)

// Demo siembra los tres inquilinos de demostración y les asigna los trasteros
// de las posiciones 1, 5 y 10, con sus atributos originales de pago, llaves y
// alarma. Solo actúa si la lista de inquilinos está vacía; devuelve true si
// sembró algo.
//
// La guarda es "lista vacía", no "clave ausente": si se borran todos los
// inquilinos, la siguiente llamada vuelve a inyectar los datos de demo.
func Demo(ctx context.Context, inquilinos repository.InquilinoRepository, trasteros repository.TrasteroRepository) (bool, error) {
	existentes, err := inquilinos.List(ctx)
	if err != nil {
		return false, err
	}
	if len(existentes) > 0 {
		return false, nil
	}

	if err := inquilinos.SaveAll(ctx, inquilinosDemo()); err != nil {
		return false, err
	}

	lista, err := trasteros.List(ctx)
	if err != nil {
		return false, err
	}
	asignarTrasterosDemo(lista)
	if err := trasteros.SaveAll(ctx, lista); err != nil {
		return false, err
	}
	return true, nil
}

func inquilinosDemo() []entity.Inquilino {
	return []entity.Inquilino{
		{
			ID:        "inq_1",
			Nombre:    "Juan",
			Apellidos: "García López",
			Email:     "juan.garcia@example.com",
			Telefono:  "666 123 456",
			FechaAlta: entity.NuevaFecha(2024, time.January, 15),
		},
		{
			ID:        "inq_2",
			Nombre:    "María",
			Apellidos: "Rodríguez Pérez",
			Email:     "maria.rodriguez@example.com",
			Telefono:  "677 234 567",
			FechaAlta: entity.NuevaFecha(2024, time.February, 20),
		},
		{
			ID:        "inq_3",
			Nombre:    "Carlos",
			Apellidos: "Martínez Sánchez",
			Email:     "carlos.martinez@example.com",
			Telefono:  "688 345 678",
			FechaAlta: entity.NuevaFecha(2024, time.March, 10),
		},
	}
}

// asignarTrasterosDemo ocupa las posiciones 1, 5 y 10 de la lista (si existen)
// con los atributos de demostración.
func asignarTrasterosDemo(trasteros []entity.Trastero) {
	asignar := func(pos int, inquilinoID string, alCorriente bool, ultimo, proximo entity.Fecha, llaves entity.Llaves, alarma string) {
		if pos >= len(trasteros) {
			return
		}
		t := &trasteros[pos]
		t.InquilinoID = &inquilinoID
		t.AlCorrientePago = alCorriente
		t.UltimoPago = ultimo
		t.ProximoPago = proximo
		t.Llaves = llaves
		t.CodigoAlarma = alarma
	}

	asignar(0, "inq_1", true,
		entity.NuevaFecha(2024, time.December, 1), entity.NuevaFecha(2025, time.January, 1),
		entity.Llaves{Cantidad: 2, Tipo: entity.TipoLlaveEstandar, FechaEntrega: entity.NuevaFecha(2024, time.January, 15)},
		"1234")
	asignar(4, "inq_2", false,
		entity.NuevaFecha(2024, time.October, 1), entity.NuevaFecha(2024, time.November, 1),
		entity.Llaves{Cantidad: 1, Tipo: entity.TipoLlaveEstandar, FechaEntrega: entity.NuevaFecha(2024, time.February, 20)},
		"5678")
	asignar(9, "inq_3", true,
		entity.NuevaFecha(2024, time.December, 10), entity.NuevaFecha(2025, time.January, 10),
		entity.Llaves{Cantidad: 2, Tipo: "Reforzada", FechaEntrega: entity.NuevaFecha(2024, time.March, 10)},
		"9012")
}
