package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura de proveedor.
// El estado almacenado no se recalcula a partir de la fecha de vencimiento:
// "vencida" se asigna de forma explícita; la etiqueta de vencimiento que ve el
// usuario se deriva aparte (ver analytics.DueDaysLabel).
const (
	InvoiceStatusPending = "pendiente"
	InvoiceStatusPaid    = "pagada"
	InvoiceStatusOverdue = "vencida"
)

// NoSupplierName valor mostrado cuando el join con proveedores no encuentra fila.
const NoSupplierName = "Sin proveedor"

// Invoice representa una factura recibida de un proveedor.
type Invoice struct {
	ID          string
	SupplierID  string
	Number      string
	Amount      decimal.Decimal
	IssueDate   time.Time
	DueDate     time.Time
	Status      string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// SupplierName se completa en el listado (LEFT JOIN a suppliers).
	// Si el proveedor no existe, vale NoSupplierName.
	SupplierName string
}

// ValidInvoiceStatus indica si s es uno de los estados conocidos.
func ValidInvoiceStatus(s string) bool {
	switch s {
	case InvoiceStatusPending, InvoiceStatusPaid, InvoiceStatusOverdue:
		return true
	}
	return false
}
