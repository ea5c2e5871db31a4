// Package pdf implementa el informe financiero mensual en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Trasteros Pro  │  Informe mensual + fecha          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: ocupación, cobros, ingresos esperados, beneficio      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: últimos gastos (fecha, concepto, categoría, monto)   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: ingresos esperados de los últimos 6 meses            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/trasteros-pro/internal/application/analytics"
	"github.com/tu-usuario/trasteros-pro/internal/application/dto"
	"github.com/tu-usuario/trasteros-pro/internal/application/informes"
	"github.com/tu-usuario/trasteros-pro/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa informes.InformePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

var _ informes.InformePDFGenerator = (*MarotoPDFGenerator)(nil)

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerarInformeMensual genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerarInformeMensual(
	_ context.Context,
	informe *informes.InformeMensual,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Informe financiero mensual", true).
		WithAuthor("Trasteros Pro", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(informe))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(kpiRows(informe.Resumen)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitleRow("ÚLTIMOS GASTOS"))
	m.AddRows(gastosHeaderRow())
	for _, r := range gastosRows(informe.UltimosGastos) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(sectionTitleRow("INGRESOS ESPERADOS, ÚLTIMOS 6 MESES"))
	for _, r := range serieRows(informe.Resumen) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(informe.Generado))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la nave (izq) y mes del informe (der).
func headerRow(informe *informes.InformeMensual) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("Trasteros Pro", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Gestión de alquiler de trasteros", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("INFORME FINANCIERO MENSUAL", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(informe.Resumen.EtiquetaMes, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Generado: "+informe.Generado.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// kpiRows: dos filas de indicadores del mes.
func kpiRows(r dto.ResumenFinancieroDTO) []core.Row {
	kpi := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1, Align: align.Center}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 5, Align: align.Center,
			}),
		)
	}
	return []core.Row{
		row.New(12).Add(
			kpi("Trasteros", fmt.Sprintf("%d", r.TotalTrasteros)),
			kpi("Ocupados", fmt.Sprintf("%d", r.Ocupados)),
			kpi("Disponibles", fmt.Sprintf("%d", r.Disponibles)),
			kpi("Ocupación", r.TasaOcupacion.StringFixed(1)+" %"),
		),
		row.New(12).Add(
			kpi("Al corriente", fmt.Sprintf("%d", r.AlCorriente)),
			kpi("Pendientes", fmt.Sprintf("%d", r.Pendientes)),
			kpi("Ingresos esperados", r.IngresosEsperadosFormateado),
			kpi("Beneficio del mes", r.BeneficioMesFormateado),
		),
	}
}

func sectionTitleRow(titulo string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(titulo, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		}),
	))
}

// gastosHeaderRow: cabecera de la tabla de gastos.
func gastosHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorGray, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		h("Fecha", 2, align.Left),
		h("Concepto", 5, align.Left),
		h("Categoría", 2, align.Left),
		h("Monto", 3, align.Right),
	)
}

// gastosRows: una fila por gasto, del más reciente al más antiguo.
func gastosRows(gastos []entity.Gasto) []core.Row {
	if len(gastos) == 0 {
		return []core.Row{row.New(7).Add(col.New(12).Add(
			text.New("Sin gastos registrados.", props.Text{
				Size: 8, Color: colorGray, Top: 1, Left: 1,
			}),
		))}
	}
	result := make([]core.Row, 0, len(gastos))
	for _, g := range gastos {
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(
				g.Fecha.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(5).Add(text.New(
				g.Concepto,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				g.Categoria,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				analytics.FormatearEuros(g.Monto),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// serieRows: un mes por fila, del más antiguo al actual.
func serieRows(r dto.ResumenFinancieroDTO) []core.Row {
	result := make([]core.Row, 0, len(r.SerieIngresosEsperados))
	for _, p := range r.SerieIngresosEsperados {
		etiqueta := analytics.EtiquetaMes(time.Date(p.Anio, time.Month(p.Mes), 1, 0, 0, 0, 0, time.UTC))
		result = append(result, row.New(6).Add(
			col.New(4).Add(text.New(etiqueta, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(4).Add(text.New(analytics.FormatearEuros(p.Monto), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(4),
		))
	}
	return result
}

func footerRow(generado time.Time) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Informe generado automáticamente el "+generado.Format("02/01/2006 15:04")+
				". Los importes del mes en curso son provisionales.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}
