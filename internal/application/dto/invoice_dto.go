package dto

import "github.com/shopspring/decimal"

// CreateInvoiceRequest body para POST /api/invoices.
// Fechas en formato ISO (DateLayout). Status vacío -> pendiente.
type CreateInvoiceRequest struct {
	SupplierID  string          `json:"supplier_id"`
	Number      string          `json:"number"`
	Amount      decimal.Decimal `json:"amount"`
	IssueDate   string          `json:"issue_date"`
	DueDate     string          `json:"due_date"`
	Status      string          `json:"status,omitempty"`
	Description string          `json:"description,omitempty"`
}

// UpdateInvoiceRequest body para PUT /api/invoices/:id.
// Campos en null/ausentes conservan el valor almacenado.
type UpdateInvoiceRequest struct {
	SupplierID  *string          `json:"supplier_id"`
	Number      *string          `json:"number"`
	Amount      *decimal.Decimal `json:"amount"`
	IssueDate   *string          `json:"issue_date"`
	DueDate     *string          `json:"due_date"`
	Status      *string          `json:"status"`
	Description *string          `json:"description"`
}

// InvoiceFilter filtros del listado (GET /api/invoices).
// Search matchea por substring (sin distinguir mayúsculas) sobre el nombre del
// proveedor o el número; Status filtra por igualdad exacta. Vacío = sin filtro.
type InvoiceFilter struct {
	Search string `query:"search"`
	Status string `query:"status"`
}

// InvoiceResponse factura en respuestas (con nombre de proveedor resuelto).
type InvoiceResponse struct {
	ID           string          `json:"id"`
	SupplierID   string          `json:"supplier_id"`
	SupplierName string          `json:"supplier_name"`
	Number       string          `json:"number"`
	Amount       decimal.Decimal `json:"amount"`
	IssueDate    string          `json:"issue_date"`
	DueDate      string          `json:"due_date"`
	Status       string          `json:"status"`
	Description  string          `json:"description,omitempty"`
}
