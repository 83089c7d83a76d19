// Package pdf genera el resumen financiero mensual del panel en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Resumen financiero + etiqueta de mes                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: pendiente / vencido / nómina / pagado este mes        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: próximos vencimientos (hasta 5)                      │
//	│  TABLA: total facturado por proveedor                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

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

	"github.com/tu-usuario/gestion-pyme/internal/application/dto"
	"github.com/tu-usuario/gestion-pyme/pkg/format"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// SummaryReport genera el PDF del resumen financiero usando Maroto v2.
type SummaryReport struct{}

// NewSummaryReport construye el generador.
func NewSummaryReport() *SummaryReport { return &SummaryReport{} }

// Generate genera el PDF y devuelve sus bytes.
func (g *SummaryReport) Generate(summary *dto.DashboardSummaryDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Resumen financiero", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(summary.DateLabel))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(kpiRow("Pendiente de pago",
		fmt.Sprintf("%s (%d facturas)", format.Currency(summary.PendingTotal), summary.PendingCount)))
	m.AddRows(kpiRow("Vencido",
		fmt.Sprintf("%s (%d facturas)", format.Currency(summary.OverdueTotal), summary.OverdueCount)))
	m.AddRows(kpiRow("Nómina mensual", format.Currency(summary.TotalSalaries)))
	m.AddRows(kpiRow("Pagado este mes", format.Currency(summary.PaidThisMonth)))

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(sectionTitle("Próximos vencimientos"))
	if len(summary.UpcomingDue) == 0 {
		m.AddRows(emptyRow("Sin vencimientos en los próximos 7 días"))
	}
	for _, inv := range summary.UpcomingDue {
		m.AddRows(tableRow(
			fmt.Sprintf("%s - Factura %s", inv.SupplierName, inv.Number),
			inv.DueLabel,
			format.Currency(inv.Amount),
		))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(sectionTitle("Facturado por proveedor"))
	if len(summary.AmountBySupplier) == 0 {
		m.AddRows(emptyRow("Sin facturas cargadas"))
	}
	for _, s := range summary.AmountBySupplier {
		m.AddRows(tableRow(s.SupplierName, "", format.Currency(s.Total)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título del reporte + etiqueta de mes.
func headerRow(dateLabel string) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Resumen financiero", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New(dateLabel, props.Text{
				Size: 10, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

// kpiRow: etiqueta a la izquierda, valor a la derecha.
func kpiRow(label, value string) core.Row {
	return row.New(8).Add(
		col.New(7).Add(text.New(label, props.Text{Size: 9, Top: 1})),
		col.New(5).Add(text.New(value, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1,
		})),
	)
}

func sectionTitle(title string) core.Row {
	return row.New(9).Add(
		col.New(12).Add(text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		})),
	)
}

func tableRow(name, detail, amount string) core.Row {
	return row.New(7).Add(
		col.New(6).Add(text.New(name, props.Text{Size: 8, Top: 1})),
		col.New(3).Add(text.New(detail, props.Text{Size: 8, Top: 1, Color: colorGray})),
		col.New(3).Add(text.New(amount, props.Text{Size: 8, Align: align.Right, Top: 1})),
	)
}

func emptyRow(msg string) core.Row {
	return row.New(7).Add(
		col.New(12).Add(text.New(msg, props.Text{Size: 8, Top: 1, Color: colorGray})),
	)
}
