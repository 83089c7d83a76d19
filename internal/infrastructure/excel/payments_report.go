// Package excel genera la exportación de pagos en formato XLSX.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
	"github.com/tu-usuario/gestion-pyme/pkg/format"
)

// paymentColumn encabezado y extractor de valor de una columna del reporte.
type paymentColumn struct {
	Header string
	Value  func(p *entity.Payment) any
}

var paymentColumns = []paymentColumn{
	{"Fecha", func(p *entity.Payment) any { return format.Date(p.PaymentDate) }},
	{"Tipo", func(p *entity.Payment) any { return p.Kind }},
	{"Descripción", func(p *entity.Payment) any { return p.Description }},
	{"Medio", func(p *entity.Payment) any { return p.Method }},
	{"Monto", func(p *entity.Payment) any { f, _ := p.Amount.Float64(); return f }},
}

// PaymentsReport genera el listado de pagos como planilla.
type PaymentsReport struct{}

// NewPaymentsReport construye el generador.
func NewPaymentsReport() *PaymentsReport { return &PaymentsReport{} }

// Generate arma el XLSX con una fila por pago y devuelve sus bytes.
func (g *PaymentsReport) Generate(payments []*entity.Payment) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Pagos"
	f.SetSheetName(f.GetSheetName(0), sheet)

	_ = f.SetDocProps(&excelize.DocProperties{Creator: "gestion-pyme"})

	for i, col := range paymentColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, col.Header); err != nil {
			return nil, fmt.Errorf("escribir encabezado: %w", err)
		}
	}

	for rowIdx, p := range payments {
		for colIdx, col := range paymentColumns {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err := f.SetCellValue(sheet, cell, col.Value(p)); err != nil {
				return nil, fmt.Errorf("escribir fila %d: %w", rowIdx+2, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializar XLSX: %w", err)
	}
	return buf.Bytes(), nil
}
