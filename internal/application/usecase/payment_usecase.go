package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/gestion-pyme/internal/application/dto"
	"github.com/tu-usuario/gestion-pyme/internal/domain"
	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
	"github.com/tu-usuario/gestion-pyme/internal/domain/repository"
)

// PaymentUseCase casos de uso para pagos: registro manual, listado y baja.
// Los pagos nunca se actualizan en sitio.
type PaymentUseCase struct {
	payments  repository.PaymentRepository
	suppliers repository.SupplierRepository
	employees repository.EmployeeRepository
	now       func() time.Time
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(payments repository.PaymentRepository, suppliers repository.SupplierRepository, employees repository.EmployeeRepository) *PaymentUseCase {
	return &PaymentUseCase{payments: payments, suppliers: suppliers, employees: employees, now: time.Now}
}

// List lista pagos, con filtro opcional por tipo y por mes calendario ("2006-01").
func (uc *PaymentUseCase) List(ctx context.Context, q dto.ListQuery, filter dto.PaymentFilter) ([]*dto.PaymentResponse, error) {
	list, err := uc.payments.List(ctx, q.OrderBy, q.Asc)
	if err != nil {
		return nil, err
	}
	var month time.Time
	if filter.Month != "" {
		m, err := time.Parse("2006-01", filter.Month)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		month = m
	}
	out := make([]*dto.PaymentResponse, 0, len(list))
	for _, p := range list {
		if filter.Kind != "" && p.Kind != filter.Kind {
			continue
		}
		if !month.IsZero() &&
			(p.PaymentDate.Year() != month.Year() || p.PaymentDate.Month() != month.Month()) {
			continue
		}
		out = append(out, paymentResponse(p))
	}
	return out, nil
}

// Create registra un pago manual. Kind vacío cae en "otro", medio vacío en
// "transferencia" y fecha vacía en hoy.
func (uc *PaymentUseCase) Create(ctx context.Context, in dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	if strings.TrimSpace(in.Description) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Amount.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}
	kind := in.Kind
	if kind == "" {
		kind = entity.PaymentKindOther
	}
	if !entity.ValidPaymentKind(kind) {
		return nil, domain.ErrInvalidInput
	}
	method := in.Method
	if method == "" {
		method = entity.PaymentMethodTransfer
	}
	if !entity.ValidPaymentMethod(method) {
		return nil, domain.ErrInvalidInput
	}
	now := uc.now()
	paymentDate := now
	if in.PaymentDate != "" {
		d, err := parseDate(in.PaymentDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		paymentDate = d
	}
	payment := &entity.Payment{
		Kind:        kind,
		ReferenceID: in.ReferenceID,
		Description: strings.TrimSpace(in.Description),
		Amount:      in.Amount,
		PaymentDate: paymentDate,
		Method:      method,
		CreatedAt:   now,
	}
	if err := uc.payments.Create(ctx, payment); err != nil {
		return nil, err
	}
	return paymentResponse(payment), nil
}

// Delete elimina un pago.
func (uc *PaymentUseCase) Delete(ctx context.Context, id string) error {
	return uc.payments.Delete(ctx, id)
}

// Defaults arma los valores sugeridos del formulario de registro manual según
// el tipo elegido: para "factura" el selector de proveedor completa la
// descripción; para "sueldo" el selector de empleado completa descripción y
// monto (el sueldo vigente). Todo es pisable por el usuario antes de confirmar.
func (uc *PaymentUseCase) Defaults(ctx context.Context, kind, referenceID string) (*dto.PaymentDefaultsResponse, error) {
	out := &dto.PaymentDefaultsResponse{
		Amount:      decimal.Zero,
		Method:      entity.PaymentMethodTransfer,
		PaymentDate: uc.now().Format(dto.DateLayout),
	}
	switch kind {
	case entity.PaymentKindInvoice:
		if referenceID == "" {
			return out, nil
		}
		supplier, err := uc.suppliers.GetByID(ctx, referenceID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, domain.ErrNotFound
		}
		out.Description = fmt.Sprintf("Pago a %s", supplier.Name)
	case entity.PaymentKindSalary:
		if referenceID == "" {
			return out, nil
		}
		employee, err := uc.employees.GetByID(ctx, referenceID)
		if err != nil {
			return nil, err
		}
		if employee == nil {
			return nil, domain.ErrNotFound
		}
		out.Description = fmt.Sprintf("Sueldo - %s", employee.Name)
		out.Amount = employee.Salary
	case "", entity.PaymentKindOther:
		// sin sugerencia de descripción
	default:
		return nil, domain.ErrInvalidInput
	}
	return out, nil
}

func paymentResponse(p *entity.Payment) *dto.PaymentResponse {
	return &dto.PaymentResponse{
		ID:          p.ID,
		Kind:        p.Kind,
		ReferenceID: p.ReferenceID,
		Description: p.Description,
		Amount:      p.Amount,
		PaymentDate: p.PaymentDate.Format(dto.DateLayout),
		Method:      p.Method,
	}
}
