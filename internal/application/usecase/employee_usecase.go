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
	"github.com/tu-usuario/gestion-pyme/pkg/format"
)

// EmployeeUseCase casos de uso para empleados, incluido el pago de sueldo.
type EmployeeUseCase struct {
	employees repository.EmployeeRepository
	payments  repository.PaymentRepository
	now       func() time.Time
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(employees repository.EmployeeRepository, payments repository.PaymentRepository) *EmployeeUseCase {
	return &EmployeeUseCase{employees: employees, payments: payments, now: time.Now}
}

// List lista todos los empleados.
func (uc *EmployeeUseCase) List(ctx context.Context, q dto.ListQuery) ([]*dto.EmployeeResponse, error) {
	list, err := uc.employees.List(ctx, q.OrderBy, q.Asc)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, employeeResponse(e))
	}
	return out, nil
}

// Create crea un nuevo empleado.
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Salary.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}
	var hireDate time.Time
	if in.HireDate != "" {
		d, err := parseDate(in.HireDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		hireDate = d
	}
	now := uc.now()
	employee := &entity.Employee{
		Name:        strings.TrimSpace(in.Name),
		Document:    in.Document,
		Position:    in.Position,
		Salary:      in.Salary,
		HireDate:    hireDate,
		BankName:    in.BankName,
		BankAccount: in.BankAccount,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.employees.Create(ctx, employee); err != nil {
		return nil, err
	}
	return employeeResponse(employee), nil
}

// Update aplica una actualización parcial y devuelve el empleado resultante.
func (uc *EmployeeUseCase) Update(ctx context.Context, id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Salary != nil && in.Salary.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}
	patch := entity.EmployeePatch{
		Name:        in.Name,
		Document:    in.Document,
		Position:    in.Position,
		Salary:      in.Salary,
		BankName:    in.BankName,
		BankAccount: in.BankAccount,
	}
	if in.HireDate != nil {
		d, err := parseDate(*in.HireDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		patch.HireDate = &d
	}
	if err := uc.employees.Update(ctx, id, patch); err != nil {
		return nil, err
	}
	employee, err := uc.employees.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	return employeeResponse(employee), nil
}

// Delete elimina un empleado. Se bloquea si hay pagos de sueldo que lo referencian.
func (uc *EmployeeUseCase) Delete(ctx context.Context, id string) error {
	n, err := uc.payments.CountByReference(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrHasDependents
	}
	return uc.employees.Delete(ctx, id)
}

// PaySalary registra un pago de sueldo por el salario vigente del empleado.
// No modifica ningún campo del empleado.
func (uc *EmployeeUseCase) PaySalary(ctx context.Context, employeeID string) (*dto.PaymentResponse, error) {
	employee, err := uc.employees.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	now := uc.now()
	payment := &entity.Payment{
		Kind:        entity.PaymentKindSalary,
		ReferenceID: employee.ID,
		Description: fmt.Sprintf("Sueldo %s - %s", format.MonthName(now.Month()), employee.Name),
		Amount:      employee.Salary,
		PaymentDate: now,
		Method:      entity.PaymentMethodTransfer,
		CreatedAt:   now,
	}
	if err := uc.payments.Create(ctx, payment); err != nil {
		return nil, err
	}
	return paymentResponse(payment), nil
}

func employeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	out := &dto.EmployeeResponse{
		ID:          e.ID,
		Name:        e.Name,
		Document:    e.Document,
		Position:    e.Position,
		Salary:      e.Salary,
		BankName:    e.BankName,
		BankAccount: e.BankAccount,
	}
	if !e.HireDate.IsZero() {
		out.HireDate = e.HireDate.Format(dto.DateLayout)
	}
	return out
}
