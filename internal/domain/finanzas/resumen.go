// Package finanzas calcula las métricas financieras del panel a partir de una
// instantánea de las colecciones (servicio de dominio, sin estado).
//
// Todas las funciones son deterministas: con la misma instantánea y el mismo
// instante "ahora" producen el mismo resultado.
package finanzas

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/trasteros-pro/internal/domain/entity"
)

// MesesSerie es la longitud fija de la serie de ingresos esperados.
const MesesSerie = 6

var cien = decimal.NewFromInt(100)

// Resumen agrupa las métricas del mes en curso y los totales históricos.
type Resumen struct {
	TotalTrasteros int
	Ocupados       int
	Disponibles    int
	AlCorriente    int
	Pendientes     int

	// IngresosTotales suma todos los pagos registrados desde el inicio.
	IngresosTotales decimal.Decimal
	// IngresosMesActual suma los pagos cuyo mesPago/anioPago coinciden con el
	// mes de referencia (ingreso registrado).
	IngresosMesActual decimal.Decimal
	// IngresosEsperadosMes suma el precio mensual de los trasteros ocupados,
	// con independencia de los pagos reales (ingreso esperado).
	IngresosEsperadosMes decimal.Decimal
	// GastosMesActual suma los gastos cuya fecha cae en el mes de referencia.
	GastosMesActual decimal.Decimal
	NumGastosMes    int
	// BeneficioMesActual = IngresosEsperadosMes - GastosMesActual.
	BeneficioMesActual decimal.Decimal
	// TasaOcupacion = ocupados / total * 100 (0 si no hay trasteros).
	TasaOcupacion decimal.Decimal
	// IngresosPotenciales suma el precio mensual de TODOS los trasteros.
	IngresosPotenciales decimal.Decimal
}

// PuntoSerie es un mes de la serie de ingresos esperados.
type PuntoSerie struct {
	Mes   int // 1-12
	Anio  int
	Monto decimal.Decimal
}

// CalcularResumen deriva las métricas del panel para el instante ahora.
func CalcularResumen(trasteros []entity.Trastero, pagos []entity.Pago, gastos []entity.Gasto, ahora time.Time) Resumen {
	r := Resumen{TotalTrasteros: len(trasteros)}

	for _, t := range trasteros {
		r.IngresosPotenciales = r.IngresosPotenciales.Add(t.PrecioMensual)
		if !t.Ocupado() {
			r.Disponibles++
			continue
		}
		r.Ocupados++
		r.IngresosEsperadosMes = r.IngresosEsperadosMes.Add(t.PrecioMensual)
		if t.AlCorrientePago {
			r.AlCorriente++
		} else {
			r.Pendientes++
		}
	}

	mes := int(ahora.Month())
	anio := ahora.Year()
	for _, p := range pagos {
		r.IngresosTotales = r.IngresosTotales.Add(p.Monto)
		if p.MesPago == mes && p.AnioPago == anio {
			r.IngresosMesActual = r.IngresosMesActual.Add(p.Monto)
		}
	}

	for _, g := range gastos {
		if g.Fecha.MismoMes(ahora) {
			r.GastosMesActual = r.GastosMesActual.Add(g.Monto)
			r.NumGastosMes++
		}
	}

	r.BeneficioMesActual = r.IngresosEsperadosMes.Sub(r.GastosMesActual)
	if r.TotalTrasteros > 0 {
		r.TasaOcupacion = decimal.NewFromInt(int64(r.Ocupados)).
			Mul(cien).
			DivRound(decimal.NewFromInt(int64(r.TotalTrasteros)), 2)
	}
	return r
}

// SerieIngresosEsperados devuelve los ingresos esperados de los últimos
// MesesSerie meses naturales, del más antiguo al mes en curso.
//
// Un trastero cuenta en un mes si su inquilino asignado se dio de alta en o
// antes del día 1 de ese mes. La fecha de alta del inquilino es un proxy del
// inicio de ocupación: los trasteros no guardan ese dato por sí mismos.
func SerieIngresosEsperados(trasteros []entity.Trastero, inquilinos []entity.Inquilino, ahora time.Time) []PuntoSerie {
	porID := make(map[string]entity.Inquilino, len(inquilinos))
	for _, i := range inquilinos {
		porID[i.ID] = i
	}

	serie := make([]PuntoSerie, 0, MesesSerie)
	for i := MesesSerie - 1; i >= 0; i-- {
		primerDia := time.Date(ahora.Year(), ahora.Month()-time.Month(i), 1, 0, 0, 0, 0, time.UTC)

		monto := decimal.Zero
		for _, t := range trasteros {
			if !t.Ocupado() {
				continue
			}
			inq, ok := porID[*t.InquilinoID]
			if !ok || inq.FechaAlta.IsZero() {
				continue
			}
			if !inq.FechaAlta.After(primerDia) {
				monto = monto.Add(t.PrecioMensual)
			}
		}
		serie = append(serie, PuntoSerie{
			Mes:   int(primerDia.Month()),
			Anio:  primerDia.Year(),
			Monto: monto,
		})
	}
	return serie
}
