package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// KPIs principales del panel: deuda pendiente/vencida, nómina, pagos del mes
// en curso, próximos vencimientos y distribución por proveedor.
type DashboardSummaryDTO struct {
	PendingTotal  decimal.Decimal `json:"pending_total"`
	PendingCount  int             `json:"pending_count"`
	OverdueTotal  decimal.Decimal `json:"overdue_total"`
	OverdueCount  int             `json:"overdue_count"`
	TotalSalaries decimal.Decimal `json:"total_salaries"` // nómina vigente, sin filtro de fecha

	// Pagos cuyo payment_date cae en el mes calendario en curso.
	PaidThisMonth decimal.Decimal `json:"paid_this_month"`

	// Hasta 5 facturas pendientes que vencen entre hoy y hoy+7, ascendente.
	UpcomingDue []UpcomingInvoiceDTO `json:"upcoming_due"`

	// Total facturado por proveedor (todos los estados), en orden de primera
	// aparición en el listado; alimenta el gráfico de proporciones.
	AmountBySupplier []SupplierAmountDTO `json:"amount_by_supplier"`

	DateLabel string `json:"date_label"` // ej: "Agosto 2026"
}

// UpcomingInvoiceDTO factura próxima a vencer en el widget del dashboard.
type UpcomingInvoiceDTO struct {
	ID           string          `json:"id"`
	SupplierName string          `json:"supplier_name"`
	Number       string          `json:"number"`
	Amount       decimal.Decimal `json:"amount"`
	DueDate      string          `json:"due_date"`
	DueLabel     string          `json:"due_label"` // "due today", "due in 3 days", ...
}

// SupplierAmountDTO total facturado de un proveedor.
type SupplierAmountDTO struct {
	SupplierName string          `json:"supplier_name"`
	Total        decimal.Decimal `json:"total"`
}
