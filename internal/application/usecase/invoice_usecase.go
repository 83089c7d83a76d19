package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tu-usuario/gestion-pyme/internal/application/dto"
	"github.com/tu-usuario/gestion-pyme/internal/domain"
	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
	"github.com/tu-usuario/gestion-pyme/internal/domain/repository"
)

// InvoiceUseCase casos de uso para facturas de proveedor, incluido el pago.
type InvoiceUseCase struct {
	invoices repository.InvoiceRepository
	payments repository.PaymentRepository
	txRunner TxRunner
	now      func() time.Time
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(invoices repository.InvoiceRepository, payments repository.PaymentRepository, txRunner TxRunner) *InvoiceUseCase {
	return &InvoiceUseCase{invoices: invoices, payments: payments, txRunner: txRunner, now: time.Now}
}

// List lista facturas aplicando búsqueda y filtro de estado sobre el listado completo.
func (uc *InvoiceUseCase) List(ctx context.Context, q dto.ListQuery, filter dto.InvoiceFilter) ([]*dto.InvoiceResponse, error) {
	list, err := uc.invoices.List(ctx, q.OrderBy, q.Asc)
	if err != nil {
		return nil, err
	}
	list = FilterInvoices(list, filter.Search, filter.Status)
	out := make([]*dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, invoiceResponse(inv))
	}
	return out, nil
}

// FilterInvoices filtra por substring (sin distinguir mayúsculas) sobre nombre
// de proveedor o número, y por estado exacto. Cadenas vacías no filtran.
func FilterInvoices(list []*entity.Invoice, search, status string) []*entity.Invoice {
	if search == "" && status == "" {
		return list
	}
	needle := strings.ToLower(search)
	out := make([]*entity.Invoice, 0, len(list))
	for _, inv := range list {
		if status != "" && inv.Status != status {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(inv.SupplierName), needle) &&
			!strings.Contains(strings.ToLower(inv.Number), needle) {
			continue
		}
		out = append(out, inv)
	}
	return out
}

// Create crea una nueva factura. Estado vacío cae en "pendiente".
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.SupplierID == "" || strings.TrimSpace(in.Number) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Amount.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}
	issueDate, err := parseDate(in.IssueDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	dueDate, err := parseDate(in.DueDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.InvoiceStatusPending
	}
	if !entity.ValidInvoiceStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	now := uc.now()
	invoice := &entity.Invoice{
		SupplierID:  in.SupplierID,
		Number:      strings.TrimSpace(in.Number),
		Amount:      in.Amount,
		IssueDate:   issueDate,
		DueDate:     dueDate,
		Status:      status,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.invoices.Create(ctx, invoice); err != nil {
		return nil, err
	}
	created, err := uc.invoices.GetByID(ctx, invoice.ID)
	if err != nil || created == nil {
		return invoiceResponse(invoice), nil // sin nombre de proveedor resuelto
	}
	return invoiceResponse(created), nil
}

// Update aplica una actualización parcial y devuelve la factura resultante.
func (uc *InvoiceUseCase) Update(ctx context.Context, id string, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.Number != nil && strings.TrimSpace(*in.Number) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Amount != nil && in.Amount.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}
	if in.Status != nil && !entity.ValidInvoiceStatus(*in.Status) {
		return nil, domain.ErrInvalidInput
	}
	patch := entity.InvoicePatch{
		SupplierID:  in.SupplierID,
		Number:      in.Number,
		Amount:      in.Amount,
		Status:      in.Status,
		Description: in.Description,
	}
	if in.IssueDate != nil {
		d, err := parseDate(*in.IssueDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		patch.IssueDate = &d
	}
	if in.DueDate != nil {
		d, err := parseDate(*in.DueDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		patch.DueDate = &d
	}
	if err := uc.invoices.Update(ctx, id, patch); err != nil {
		return nil, err
	}
	invoice, err := uc.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	return invoiceResponse(invoice), nil
}

// Delete elimina una factura. Se bloquea si hay pagos que la referencian.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id string) error {
	n, err := uc.payments.CountByReference(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrHasDependents
	}
	return uc.invoices.Delete(ctx, id)
}

// Pay registra el pago de la factura y la marca como pagada, todo dentro de una
// transacción: nunca queda un pago asentado con la factura aún pendiente.
// Una factura ya pagada no se puede volver a pagar.
func (uc *InvoiceUseCase) Pay(ctx context.Context, invoiceID string) (*dto.PaymentResponse, error) {
	invoice, err := uc.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	if invoice.Status == entity.InvoiceStatusPaid {
		return nil, domain.ErrConflict
	}

	now := uc.now()
	payment := &entity.Payment{
		Kind:        entity.PaymentKindInvoice,
		ReferenceID: invoice.ID,
		Description: fmt.Sprintf("Pago %s - Factura %s", invoice.SupplierName, invoice.Number),
		Amount:      invoice.Amount,
		PaymentDate: now,
		Method:      entity.PaymentMethodTransfer,
		CreatedAt:   now,
	}
	err = uc.txRunner.Run(ctx, func(invoiceRepo repository.InvoiceRepository, paymentRepo repository.PaymentRepository) error {
		if err := paymentRepo.Create(ctx, payment); err != nil {
			return err
		}
		return invoiceRepo.UpdateStatus(ctx, invoice.ID, entity.InvoiceStatusPaid)
	})
	if err != nil {
		return nil, err
	}
	return paymentResponse(payment), nil
}

func invoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	name := inv.SupplierName
	if name == "" {
		name = entity.NoSupplierName
	}
	return &dto.InvoiceResponse{
		ID:           inv.ID,
		SupplierID:   inv.SupplierID,
		SupplierName: name,
		Number:       inv.Number,
		Amount:       inv.Amount,
		IssueDate:    inv.IssueDate.Format(dto.DateLayout),
		DueDate:      inv.DueDate.Format(dto.DateLayout),
		Status:       inv.Status,
		Description:  inv.Description,
	}
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dto.DateLayout, s)
}
