package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/gestion-pyme/internal/application/dto"
	"github.com/tu-usuario/gestion-pyme/internal/domain"
	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
)

func newInvoiceUC(invoices *fakeInvoiceRepo, payments *fakePaymentRepo) *InvoiceUseCase {
	uc := NewInvoiceUseCase(invoices, payments, &fakeTxRunner{invoices: invoices, payments: payments})
	uc.now = func() time.Time { return time.Date(2026, time.August, 15, 10, 0, 0, 0, time.UTC) }
	return uc
}

// ──────────────────────────────────────────────────────────────────────────────
// FilterInvoices
// ──────────────────────────────────────────────────────────────────────────────

func TestFilterInvoices_BusquedaYEstado(t *testing.T) {
	list := []*entity.Invoice{
		{Number: "A-1", SupplierName: "Acme SA", Status: entity.InvoiceStatusPending},
		{Number: "A-2", SupplierName: "Acme SA", Status: entity.InvoiceStatusPaid},
		{Number: "B-1", SupplierName: "Otro", Status: entity.InvoiceStatusPending},
		{Number: "ACME-9", SupplierName: "Otro", Status: entity.InvoiceStatusPending},
	}

	got := FilterInvoices(list, "acme", entity.InvoiceStatusPending)

	require.Len(t, got, 2)
	assert.Equal(t, "A-1", got[0].Number)  // coincide por nombre de proveedor
	assert.Equal(t, "ACME-9", got[1].Number) // coincide por número, sin distinguir mayúsculas
	for _, inv := range got {
		assert.Equal(t, entity.InvoiceStatusPending, inv.Status)
	}
}

func TestFilterInvoices_SinFiltrosDevuelveTodo(t *testing.T) {
	list := []*entity.Invoice{{Number: "A-1"}, {Number: "B-1"}}
	assert.Len(t, FilterInvoices(list, "", ""), 2)
}

func TestFilterInvoices_SoloEstado(t *testing.T) {
	list := []*entity.Invoice{
		{Number: "A-1", Status: entity.InvoiceStatusOverdue},
		{Number: "A-2", Status: entity.InvoiceStatusPending},
	}
	got := FilterInvoices(list, "", entity.InvoiceStatusOverdue)
	require.Len(t, got, 1)
	assert.Equal(t, "A-1", got[0].Number)
}

// ──────────────────────────────────────────────────────────────────────────────
// Create / Update
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoiceCreate_MontoNegativoRechazado(t *testing.T) {
	uc := newInvoiceUC(&fakeInvoiceRepo{}, &fakePaymentRepo{})

	_, err := uc.Create(context.Background(), dto.CreateInvoiceRequest{
		SupplierID: "sup-1",
		Number:     "A-1",
		Amount:     decimal.NewFromInt(-100),
		IssueDate:  "2026-08-01",
		DueDate:    "2026-09-01",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestInvoiceCreate_CamposRequeridos(t *testing.T) {
	uc := newInvoiceUC(&fakeInvoiceRepo{}, &fakePaymentRepo{})

	_, err := uc.Create(context.Background(), dto.CreateInvoiceRequest{
		Number: "A-1", Amount: decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin proveedor debe fallar")

	_, err = uc.Create(context.Background(), dto.CreateInvoiceRequest{
		SupplierID: "sup-1", Number: "   ", Amount: decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "número en blanco debe fallar")
}

func TestInvoiceCreate_EstadoPorDefectoPendiente(t *testing.T) {
	invoices := &fakeInvoiceRepo{}
	uc := newInvoiceUC(invoices, &fakePaymentRepo{})

	got, err := uc.Create(context.Background(), dto.CreateInvoiceRequest{
		SupplierID: "sup-1",
		Number:     "A-1",
		Amount:     decimal.NewFromInt(5000),
		IssueDate:  "2026-08-01",
		DueDate:    "2026-09-01",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusPending, got.Status)
	require.Len(t, invoices.invoices, 1)
}

func TestInvoiceUpdate_EstadoDesconocidoRechazado(t *testing.T) {
	invoices := &fakeInvoiceRepo{invoices: []*entity.Invoice{{ID: "inv-1", Number: "A-1"}}}
	uc := newInvoiceUC(invoices, &fakePaymentRepo{})

	bad := "archivada"
	_, err := uc.Update(context.Background(), "inv-1", dto.UpdateInvoiceRequest{Status: &bad})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Pay
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoicePay_RegistraPagoYMarcaPagada(t *testing.T) {
	invoices := &fakeInvoiceRepo{invoices: []*entity.Invoice{{
		ID:           "inv-7",
		SupplierName: "Acme",
		Number:       "A-1",
		Amount:       decimal.NewFromInt(5000),
		Status:       entity.InvoiceStatusPending,
	}}}
	payments := &fakePaymentRepo{}
	uc := newInvoiceUC(invoices, payments)

	got, err := uc.Pay(context.Background(), "inv-7")
	require.NoError(t, err)

	// exactamente un pago nuevo, referenciando a la factura por su monto completo
	require.Len(t, payments.payments, 1)
	p := payments.payments[0]
	assert.Equal(t, entity.PaymentKindInvoice, p.Kind)
	assert.Equal(t, "inv-7", p.ReferenceID)
	assert.True(t, p.Amount.Equal(decimal.NewFromInt(5000)))
	assert.Equal(t, "Pago Acme - Factura A-1", p.Description)
	assert.Equal(t, entity.PaymentMethodTransfer, p.Method)

	// la factura queda pagada
	assert.Equal(t, entity.InvoiceStatusPaid, invoices.invoices[0].Status)
	assert.Equal(t, p.Description, got.Description)
}

func TestInvoicePay_YaPagadaEsConflicto(t *testing.T) {
	invoices := &fakeInvoiceRepo{invoices: []*entity.Invoice{{
		ID: "inv-1", Status: entity.InvoiceStatusPaid, Amount: decimal.NewFromInt(100),
	}}}
	payments := &fakePaymentRepo{}
	uc := newInvoiceUC(invoices, payments)

	_, err := uc.Pay(context.Background(), "inv-1")

	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Empty(t, payments.payments, "no debe registrarse ningún pago")
}

func TestInvoicePay_NoExiste(t *testing.T) {
	uc := newInvoiceUC(&fakeInvoiceRepo{}, &fakePaymentRepo{})
	_, err := uc.Pay(context.Background(), "inv-404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInvoicePay_FallaDeTransaccionNoCambiaEstado(t *testing.T) {
	invoices := &fakeInvoiceRepo{invoices: []*entity.Invoice{{
		ID: "inv-1", Status: entity.InvoiceStatusPending, Amount: decimal.NewFromInt(100),
	}}}
	payments := &fakePaymentRepo{}
	uc := NewInvoiceUseCase(invoices, payments, &fakeTxRunner{
		invoices: invoices, payments: payments, failWith: errors.New("deadlock"),
	})

	_, err := uc.Pay(context.Background(), "inv-1")

	assert.Error(t, err)
	assert.Equal(t, entity.InvoiceStatusPending, invoices.invoices[0].Status)
	assert.Empty(t, payments.payments)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoiceDelete_BloqueadaConPagos(t *testing.T) {
	invoices := &fakeInvoiceRepo{invoices: []*entity.Invoice{{ID: "inv-1"}}}
	payments := &fakePaymentRepo{payments: []*entity.Payment{{ID: "pay-1", ReferenceID: "inv-1"}}}
	uc := newInvoiceUC(invoices, payments)

	err := uc.Delete(context.Background(), "inv-1")

	assert.ErrorIs(t, err, domain.ErrHasDependents)
	assert.Len(t, invoices.invoices, 1, "la factura no debe borrarse")
}

func TestInvoiceDelete_SinPagos(t *testing.T) {
	invoices := &fakeInvoiceRepo{invoices: []*entity.Invoice{{ID: "inv-1"}}}
	uc := newInvoiceUC(invoices, &fakePaymentRepo{})

	require.NoError(t, uc.Delete(context.Background(), "inv-1"))
	assert.Empty(t, invoices.invoices)
}
