package dto

import "github.com/shopspring/decimal"

// ResumenFinancieroDTO respuesta de GET /api/dashboard/resumen.
// KPIs del mes en curso, totales históricos y la serie de 6 meses.
type ResumenFinancieroDTO struct {
	TotalTrasteros int `json:"total_trasteros"`
	Ocupados       int `json:"ocupados"`
	Disponibles    int `json:"disponibles"`
	AlCorriente    int `json:"al_corriente"`
	Pendientes     int `json:"pendientes"`

	IngresosTotales      decimal.Decimal `json:"ingresos_totales"`
	IngresosMesActual    decimal.Decimal `json:"ingresos_mes_actual"`     // registrados
	IngresosEsperadosMes decimal.Decimal `json:"ingresos_esperados_mes"`  // ocupación * precio
	GastosMesActual      decimal.Decimal `json:"gastos_mes_actual"`
	NumGastosMes         int             `json:"num_gastos_mes"`
	BeneficioMesActual   decimal.Decimal `json:"beneficio_mes_actual"`
	TasaOcupacion        decimal.Decimal `json:"tasa_ocupacion"` // porcentaje 0-100
	IngresosPotenciales  decimal.Decimal `json:"ingresos_potenciales"`

	// Etiquetas listas para pintar, formateadas en es-ES.
	EtiquetaMes               string `json:"etiqueta_mes"`                // ej: "Agosto 2026"
	BeneficioMesFormateado    string `json:"beneficio_mes_formateado"`    // ej: "1.570,00 €"
	IngresosEsperadosFormateado string `json:"ingresos_esperados_formateado"`

	SerieIngresosEsperados []PuntoSerieDTO `json:"serie_ingresos_esperados"` // 6 meses, antiguo → actual
}

// PuntoSerieDTO un mes de la serie de ingresos esperados.
type PuntoSerieDTO struct {
	Mes   int             `json:"mes"` // 1-12
	Anio  int             `json:"anio"`
	Monto decimal.Decimal `json:"monto"`
}
