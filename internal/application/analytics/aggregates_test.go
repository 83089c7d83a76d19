package analytics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/gestion-pyme/internal/application/analytics"
	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// ──────────────────────────────────────────────────────────────────────────────
// DueDays / DueDaysLabel
// ──────────────────────────────────────────────────────────────────────────────

func TestDueDaysLabel_Etiquetas(t *testing.T) {
	today := date(2024, time.June, 10)

	cases := []struct {
		name string
		due  time.Time
		want string
	}{
		{"vencida ayer", date(2024, time.June, 9), "overdue by 1 days"},
		{"vence hoy", date(2024, time.June, 10), "due today"},
		{"vence mañana", date(2024, time.June, 11), "due tomorrow"},
		{"vence en una semana", date(2024, time.June, 17), "due in 7 days"},
		{"fuera de la ventana", date(2024, time.June, 18), "due in 8 days"},
		{"vencida hace un mes", date(2024, time.May, 10), "overdue by 31 days"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, analytics.DueDaysLabel(today, tc.due))
		})
	}
}

// La etiqueta no debe depender de la hora del día en que se renderiza.
func TestDueDays_IndependienteDeLaHora(t *testing.T) {
	due := date(2024, time.June, 12)
	morning := time.Date(2024, time.June, 10, 0, 30, 0, 0, time.UTC)
	night := time.Date(2024, time.June, 10, 23, 45, 0, 0, time.UTC)

	assert.Equal(t, 2, analytics.DueDays(morning, due))
	assert.Equal(t, 2, analytics.DueDays(night, due))
}

// ──────────────────────────────────────────────────────────────────────────────
// SumByStatus
// ──────────────────────────────────────────────────────────────────────────────

func TestSumByStatus_PendientesYVencidas(t *testing.T) {
	invoices := []*entity.Invoice{
		{Status: entity.InvoiceStatusPending, Amount: dec("100")},
		{Status: entity.InvoiceStatusPending, Amount: dec("250.50")},
		{Status: entity.InvoiceStatusOverdue, Amount: dec("75")},
		{Status: entity.InvoiceStatusPaid, Amount: dec("999")},
	}

	pending := analytics.SumByStatus(invoices, entity.InvoiceStatusPending)
	overdue := analytics.SumByStatus(invoices, entity.InvoiceStatusOverdue)

	assert.True(t, pending.Total.Equal(dec("350.50")))
	assert.Equal(t, 2, pending.Count)
	assert.True(t, overdue.Total.Equal(dec("75")))
	assert.Equal(t, 1, overdue.Count)

	// pendiente + vencida nunca supera el total de facturas, y la suma es
	// exactamente el monto de las facturas en esos dos estados.
	assert.LessOrEqual(t, pending.Count+overdue.Count, len(invoices))
	assert.True(t, pending.Total.Add(overdue.Total).Equal(dec("425.50")))
}

func TestSumByStatus_ListaVacia(t *testing.T) {
	got := analytics.SumByStatus(nil, entity.InvoiceStatusPending)
	assert.True(t, got.Total.IsZero())
	assert.Equal(t, 0, got.Count)
}

// ──────────────────────────────────────────────────────────────────────────────
// TotalSalaries / PaidInMonth
// ──────────────────────────────────────────────────────────────────────────────

func TestTotalSalaries(t *testing.T) {
	employees := []*entity.Employee{
		{Salary: dec("350000")},
		{Salary: dec("420000.50")},
	}
	assert.True(t, analytics.TotalSalaries(employees).Equal(dec("770000.50")))
}

func TestPaidInMonth_SoloMesEnCurso(t *testing.T) {
	ref := date(2026, time.August, 15)
	payments := []*entity.Payment{
		{Amount: dec("1000"), PaymentDate: date(2026, time.August, 1)},
		{Amount: dec("500"), PaymentDate: date(2026, time.August, 31)},
		{Amount: dec("9999"), PaymentDate: date(2026, time.July, 31)},
		{Amount: dec("9999"), PaymentDate: date(2025, time.August, 15)}, // otro año
	}
	assert.True(t, analytics.PaidInMonth(payments, ref).Equal(dec("1500")))
}

// ──────────────────────────────────────────────────────────────────────────────
// UpcomingDue
// ──────────────────────────────────────────────────────────────────────────────

func TestUpcomingDue_VentanaYOrden(t *testing.T) {
	today := date(2024, time.June, 10)
	invoices := []*entity.Invoice{
		{Number: "F-5", Status: entity.InvoiceStatusPending, DueDate: date(2024, time.June, 17)},
		{Number: "F-1", Status: entity.InvoiceStatusPending, DueDate: date(2024, time.June, 10)},
		{Number: "F-3", Status: entity.InvoiceStatusPending, DueDate: date(2024, time.June, 12)},
		{Number: "F-X", Status: entity.InvoiceStatusPaid, DueDate: date(2024, time.June, 11)},    // pagada: afuera
		{Number: "F-Y", Status: entity.InvoiceStatusPending, DueDate: date(2024, time.June, 9)},  // vencida: afuera
		{Number: "F-Z", Status: entity.InvoiceStatusPending, DueDate: date(2024, time.June, 18)}, // +8: afuera
	}

	got := analytics.UpcomingDue(invoices, today)

	require.Len(t, got, 3)
	assert.Equal(t, "F-1", got[0].Number)
	assert.Equal(t, "F-3", got[1].Number)
	assert.Equal(t, "F-5", got[2].Number)
	for _, inv := range got {
		assert.Equal(t, entity.InvoiceStatusPending, inv.Status)
		d := analytics.DueDays(today, inv.DueDate)
		assert.GreaterOrEqual(t, d, 0)
		assert.LessOrEqual(t, d, 7)
	}
}

func TestUpcomingDue_CortaEnCinco(t *testing.T) {
	today := date(2024, time.June, 10)
	var invoices []*entity.Invoice
	for i := 0; i < 8; i++ {
		invoices = append(invoices, &entity.Invoice{
			Status:  entity.InvoiceStatusPending,
			DueDate: date(2024, time.June, 10+i%7),
		})
	}
	got := analytics.UpcomingDue(invoices, today)
	assert.Len(t, got, 5)
}

// ──────────────────────────────────────────────────────────────────────────────
// AmountBySupplier
// ──────────────────────────────────────────────────────────────────────────────

func TestAmountBySupplier_AcumulaPorNombre(t *testing.T) {
	invoices := []*entity.Invoice{
		{SupplierName: "A", Amount: dec("100")},
		{SupplierName: "B", Amount: dec("50")},
		{SupplierName: "A", Amount: dec("25")},
	}

	got := analytics.AmountBySupplier(invoices)

	require.Len(t, got, 2)
	// orden de primera aparición
	assert.Equal(t, "A", got[0].SupplierName)
	assert.True(t, got[0].Total.Equal(dec("125")))
	assert.Equal(t, "B", got[1].SupplierName)
	assert.True(t, got[1].Total.Equal(dec("50")))
}

func TestAmountBySupplier_SinProveedor(t *testing.T) {
	invoices := []*entity.Invoice{
		{SupplierName: "", Amount: dec("30")},
		{SupplierName: entity.NoSupplierName, Amount: dec("20")},
	}

	got := analytics.AmountBySupplier(invoices)

	// el nombre vacío y el sentinela caen en la misma entrada
	require.Len(t, got, 1)
	assert.Equal(t, entity.NoSupplierName, got[0].SupplierName)
	assert.True(t, got[0].Total.Equal(dec("50")))
}
