package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
	"github.com/tu-usuario/gestion-pyme/pkg/logger"
)

type stubInvoiceRepo struct {
	list []*entity.Invoice
	err  error
}

func (s *stubInvoiceRepo) List(ctx context.Context, orderBy string, asc bool) ([]*entity.Invoice, error) {
	return s.list, s.err
}
func (s *stubInvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	return nil, nil
}
func (s *stubInvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error { return nil }
func (s *stubInvoiceRepo) Update(ctx context.Context, id string, patch entity.InvoicePatch) error {
	return nil
}
func (s *stubInvoiceRepo) UpdateStatus(ctx context.Context, id, status string) error { return nil }
func (s *stubInvoiceRepo) Delete(ctx context.Context, id string) error               { return nil }
func (s *stubInvoiceRepo) CountBySupplier(ctx context.Context, supplierID string) (int, error) {
	return 0, nil
}

type stubEmployeeRepo struct {
	list []*entity.Employee
}

func (s *stubEmployeeRepo) List(ctx context.Context, orderBy string, asc bool) ([]*entity.Employee, error) {
	return s.list, nil
}
func (s *stubEmployeeRepo) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	return nil, nil
}
func (s *stubEmployeeRepo) Create(ctx context.Context, employee *entity.Employee) error { return nil }
func (s *stubEmployeeRepo) Update(ctx context.Context, id string, patch entity.EmployeePatch) error {
	return nil
}
func (s *stubEmployeeRepo) Delete(ctx context.Context, id string) error { return nil }

type stubPaymentRepo struct {
	list []*entity.Payment
}

func (s *stubPaymentRepo) List(ctx context.Context, orderBy string, asc bool) ([]*entity.Payment, error) {
	return s.list, nil
}
func (s *stubPaymentRepo) GetByID(ctx context.Context, id string) (*entity.Payment, error) {
	return nil, nil
}
func (s *stubPaymentRepo) Create(ctx context.Context, payment *entity.Payment) error { return nil }
func (s *stubPaymentRepo) Delete(ctx context.Context, id string) error               { return nil }
func (s *stubPaymentRepo) CountByReference(ctx context.Context, referenceID string) (int, error) {
	return 0, nil
}

func TestGetSummary_ArmaTodosLosKPIs(t *testing.T) {
	today := time.Date(2026, time.August, 15, 10, 0, 0, 0, time.UTC)
	invoices := &stubInvoiceRepo{list: []*entity.Invoice{
		{ID: "i1", SupplierName: "Acme", Number: "A-1", Status: entity.InvoiceStatusPending,
			Amount: decimal.NewFromInt(100), DueDate: time.Date(2026, time.August, 17, 0, 0, 0, 0, time.UTC)},
		{ID: "i2", SupplierName: "Acme", Number: "A-2", Status: entity.InvoiceStatusOverdue,
			Amount: decimal.NewFromInt(40), DueDate: time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "i3", SupplierName: "Beta", Number: "B-1", Status: entity.InvoiceStatusPaid,
			Amount: decimal.NewFromInt(60), DueDate: time.Date(2026, time.August, 16, 0, 0, 0, 0, time.UTC)},
	}}
	employees := &stubEmployeeRepo{list: []*entity.Employee{{Salary: decimal.NewFromInt(350000)}}}
	payments := &stubPaymentRepo{list: []*entity.Payment{
		{Amount: decimal.NewFromInt(60), PaymentDate: time.Date(2026, time.August, 2, 0, 0, 0, 0, time.UTC)},
		{Amount: decimal.NewFromInt(999), PaymentDate: time.Date(2026, time.July, 2, 0, 0, 0, 0, time.UTC)},
	}}

	uc := NewDashboardUseCase(invoices, employees, payments, logger.Nop())
	uc.now = func() time.Time { return today }

	got, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.True(t, got.PendingTotal.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, 1, got.PendingCount)
	assert.True(t, got.OverdueTotal.Equal(decimal.NewFromInt(40)))
	assert.Equal(t, 1, got.OverdueCount)
	assert.True(t, got.TotalSalaries.Equal(decimal.NewFromInt(350000)))
	assert.True(t, got.PaidThisMonth.Equal(decimal.NewFromInt(60)), "solo pagos del mes en curso")
	assert.Equal(t, "Agosto 2026", got.DateLabel)

	// solo la pendiente dentro de la ventana entra en próximos vencimientos
	require.Len(t, got.UpcomingDue, 1)
	assert.Equal(t, "i1", got.UpcomingDue[0].ID)
	assert.Equal(t, "due in 2 days", got.UpcomingDue[0].DueLabel)

	// todas las facturas suman por proveedor, sin importar estado
	require.Len(t, got.AmountBySupplier, 2)
	assert.Equal(t, "Acme", got.AmountBySupplier[0].SupplierName)
	assert.True(t, got.AmountBySupplier[0].Total.Equal(decimal.NewFromInt(140)))
}

// Si un listado falla, el resumen se arma igual con lista vacía.
func TestGetSummary_FallaParcialNoAborta(t *testing.T) {
	invoices := &stubInvoiceRepo{err: errors.New("timeout")}
	employees := &stubEmployeeRepo{list: []*entity.Employee{{Salary: decimal.NewFromInt(100)}}}
	payments := &stubPaymentRepo{}

	uc := NewDashboardUseCase(invoices, employees, payments, logger.Nop())

	got, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.True(t, got.PendingTotal.IsZero())
	assert.Empty(t, got.UpcomingDue)
	assert.True(t, got.TotalSalaries.Equal(decimal.NewFromInt(100)))
}
