// Package analytics contiene el caso de uso del panel financiero: agrega las
// colecciones y delega el cálculo en el servicio de dominio finanzas.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/tu-usuario/trasteros-pro/internal/application/dto"
	"github.com/tu-usuario/trasteros-pro/internal/domain/entity"
	"github.com/tu-usuario/trasteros-pro/internal/domain/finanzas"
	"github.com/tu-usuario/trasteros-pro/internal/domain/repository"
)

var impresorEuros = message.NewPrinter(language.MustParse("es-ES"))

// DashboardUseCase genera el resumen financiero del mes en curso.
//
// Fuente de datos: los repositorios de colecciones (lecturas read-only).
// Todo el cálculo vive en el paquete finanzas; aquí solo se agrega y formatea.
type DashboardUseCase struct {
	trasteros  repository.TrasteroRepository
	inquilinos repository.InquilinoRepository
	pagos      repository.PagoRepository
	gastos     repository.GastoRepository
	ahora      func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	trasteros repository.TrasteroRepository,
	inquilinos repository.InquilinoRepository,
	pagos repository.PagoRepository,
	gastos repository.GastoRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		trasteros:  trasteros,
		inquilinos: inquilinos,
		pagos:      pagos,
		gastos:     gastos,
		ahora:      time.Now,
	}
}

// resultado de la lectura de una colección en paralelo.
type resultado[T any] struct {
	datos []T
	err   error
}

// Resumen construye el ResumenFinancieroDTO del instante actual.
//
// Cuatro lecturas en paralelo, una por colección; después el cálculo es puro.
func (uc *DashboardUseCase) Resumen(ctx context.Context) (*dto.ResumenFinancieroDTO, error) {
	trasterosCh := make(chan resultado[entity.Trastero], 1)
	inquilinosCh := make(chan resultado[entity.Inquilino], 1)
	pagosCh := make(chan resultado[entity.Pago], 1)
	gastosCh := make(chan resultado[entity.Gasto], 1)

	go func() {
		t, err := uc.trasteros.List(ctx)
		trasterosCh <- resultado[entity.Trastero]{t, err}
	}()
	go func() {
		i, err := uc.inquilinos.List(ctx)
		inquilinosCh <- resultado[entity.Inquilino]{i, err}
	}()
	go func() {
		p, err := uc.pagos.List(ctx)
		pagosCh <- resultado[entity.Pago]{p, err}
	}()
	go func() {
		g, err := uc.gastos.List(ctx)
		gastosCh <- resultado[entity.Gasto]{g, err}
	}()

	trasteros := <-trasterosCh
	inquilinos := <-inquilinosCh
	pagos := <-pagosCh
	gastos := <-gastosCh

	if trasteros.err != nil {
		return nil, fmt.Errorf("dashboard: trasteros: %w", trasteros.err)
	}
	if inquilinos.err != nil {
		return nil, fmt.Errorf("dashboard: inquilinos: %w", inquilinos.err)
	}
	if pagos.err != nil {
		return nil, fmt.Errorf("dashboard: pagos: %w", pagos.err)
	}
	if gastos.err != nil {
		return nil, fmt.Errorf("dashboard: gastos: %w", gastos.err)
	}

	ahora := uc.ahora()
	resumen := finanzas.CalcularResumen(trasteros.datos, pagos.datos, gastos.datos, ahora)
	serie := finanzas.SerieIngresosEsperados(trasteros.datos, inquilinos.datos, ahora)

	puntos := make([]dto.PuntoSerieDTO, 0, len(serie))
	for _, p := range serie {
		puntos = append(puntos, dto.PuntoSerieDTO{Mes: p.Mes, Anio: p.Anio, Monto: p.Monto})
	}

	return &dto.ResumenFinancieroDTO{
		TotalTrasteros: resumen.TotalTrasteros,
		Ocupados:       resumen.Ocupados,
		Disponibles:    resumen.Disponibles,
		AlCorriente:    resumen.AlCorriente,
		Pendientes:     resumen.Pendientes,

		IngresosTotales:      resumen.IngresosTotales,
		IngresosMesActual:    resumen.IngresosMesActual,
		IngresosEsperadosMes: resumen.IngresosEsperadosMes,
		GastosMesActual:      resumen.GastosMesActual,
		NumGastosMes:         resumen.NumGastosMes,
		BeneficioMesActual:   resumen.BeneficioMesActual,
		TasaOcupacion:        resumen.TasaOcupacion,
		IngresosPotenciales:  resumen.IngresosPotenciales,

		EtiquetaMes:                 EtiquetaMes(ahora),
		BeneficioMesFormateado:      FormatearEuros(resumen.BeneficioMesActual),
		IngresosEsperadosFormateado: FormatearEuros(resumen.IngresosEsperadosMes),

		SerieIngresosEsperados: puntos,
	}, nil
}

// EtiquetaMes devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func EtiquetaMes(t time.Time) string {
	meses := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", meses[t.Month()-1], t.Year())
}

// FormatearEuros formatea un importe en es-ES, ej: "1.570,00 €".
func FormatearEuros(monto decimal.Decimal) string {
	valor, _ := monto.Round(2).Float64()
	return impresorEuros.Sprintf("%v €", number.Decimal(valor, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
