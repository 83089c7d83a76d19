package usecase

import (
	"context"
	"fmt"

	"github.com/tu-usuario/gestion-pyme/internal/domain"
	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
	"github.com/tu-usuario/gestion-pyme/internal/domain/repository"
)

// Fakes en memoria para los tests de casos de uso. Implementan los puertos de
// repositorio con slices; sin orden ni filtrado server-side.

type fakeInvoiceRepo struct {
	invoices []*entity.Invoice
	updates  []string // ids con UpdateStatus aplicado
}

func (f *fakeInvoiceRepo) List(ctx context.Context, orderBy string, asc bool) ([]*entity.Invoice, error) {
	return f.invoices, nil
}

func (f *fakeInvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	for _, inv := range f.invoices {
		if inv.ID == id {
			return inv, nil
		}
	}
	return nil, nil
}

func (f *fakeInvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	if invoice.ID == "" {
		invoice.ID = fmt.Sprintf("inv-%d", len(f.invoices)+1)
	}
	f.invoices = append(f.invoices, invoice)
	return nil
}

func (f *fakeInvoiceRepo) Update(ctx context.Context, id string, patch entity.InvoicePatch) error {
	inv, _ := f.GetByID(ctx, id)
	if inv == nil {
		return domain.ErrNotFound
	}
	if patch.Number != nil {
		inv.Number = *patch.Number
	}
	if patch.Amount != nil {
		inv.Amount = *patch.Amount
	}
	if patch.Status != nil {
		inv.Status = *patch.Status
	}
	if patch.Description != nil {
		inv.Description = *patch.Description
	}
	return nil
}

func (f *fakeInvoiceRepo) UpdateStatus(ctx context.Context, id, status string) error {
	inv, _ := f.GetByID(ctx, id)
	if inv == nil {
		return domain.ErrNotFound
	}
	inv.Status = status
	f.updates = append(f.updates, id)
	return nil
}

func (f *fakeInvoiceRepo) Delete(ctx context.Context, id string) error {
	for i, inv := range f.invoices {
		if inv.ID == id {
			f.invoices = append(f.invoices[:i], f.invoices[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeInvoiceRepo) CountBySupplier(ctx context.Context, supplierID string) (int, error) {
	n := 0
	for _, inv := range f.invoices {
		if inv.SupplierID == supplierID {
			n++
		}
	}
	return n, nil
}

type fakePaymentRepo struct {
	payments  []*entity.Payment
	createErr error
}

func (f *fakePaymentRepo) List(ctx context.Context, orderBy string, asc bool) ([]*entity.Payment, error) {
	return f.payments, nil
}

func (f *fakePaymentRepo) GetByID(ctx context.Context, id string) (*entity.Payment, error) {
	for _, p := range f.payments {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePaymentRepo) Create(ctx context.Context, payment *entity.Payment) error {
	if f.createErr != nil {
		return f.createErr
	}
	if payment.ID == "" {
		payment.ID = fmt.Sprintf("pay-%d", len(f.payments)+1)
	}
	f.payments = append(f.payments, payment)
	return nil
}

func (f *fakePaymentRepo) Delete(ctx context.Context, id string) error {
	for i, p := range f.payments {
		if p.ID == id {
			f.payments = append(f.payments[:i], f.payments[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakePaymentRepo) CountByReference(ctx context.Context, referenceID string) (int, error) {
	n := 0
	for _, p := range f.payments {
		if p.ReferenceID == referenceID {
			n++
		}
	}
	return n, nil
}

type fakeEmployeeRepo struct {
	employees []*entity.Employee
}

func (f *fakeEmployeeRepo) List(ctx context.Context, orderBy string, asc bool) ([]*entity.Employee, error) {
	return f.employees, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, employee *entity.Employee) error {
	if employee.ID == "" {
		employee.ID = fmt.Sprintf("emp-%d", len(f.employees)+1)
	}
	f.employees = append(f.employees, employee)
	return nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, id string, patch entity.EmployeePatch) error {
	e, _ := f.GetByID(ctx, id)
	if e == nil {
		return domain.ErrNotFound
	}
	if patch.Name != nil {
		e.Name = *patch.Name
	}
	if patch.Salary != nil {
		e.Salary = *patch.Salary
	}
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	for i, e := range f.employees {
		if e.ID == id {
			f.employees = append(f.employees[:i], f.employees[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeSupplierRepo struct {
	suppliers []*entity.Supplier
}

func (f *fakeSupplierRepo) List(ctx context.Context, orderBy string, asc bool) ([]*entity.Supplier, error) {
	return f.suppliers, nil
}

func (f *fakeSupplierRepo) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	for _, s := range f.suppliers {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSupplierRepo) Create(ctx context.Context, supplier *entity.Supplier) error {
	if supplier.ID == "" {
		supplier.ID = fmt.Sprintf("sup-%d", len(f.suppliers)+1)
	}
	f.suppliers = append(f.suppliers, supplier)
	return nil
}

func (f *fakeSupplierRepo) Update(ctx context.Context, id string, patch entity.SupplierPatch) error {
	s, _ := f.GetByID(ctx, id)
	if s == nil {
		return domain.ErrNotFound
	}
	if patch.Name != nil {
		s.Name = *patch.Name
	}
	return nil
}

func (f *fakeSupplierRepo) Delete(ctx context.Context, id string) error {
	for i, s := range f.suppliers {
		if s.ID == id {
			f.suppliers = append(f.suppliers[:i], f.suppliers[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// fakeTxRunner pasa los mismos repos de afuera; no hay transacción real.
type fakeTxRunner struct {
	invoices *fakeInvoiceRepo
	payments *fakePaymentRepo
	failWith error // si no es nil, la "transacción" falla sin ejecutar fn
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(repository.InvoiceRepository, repository.PaymentRepository) error) error {
	if f.failWith != nil {
		return f.failWith
	}
	return fn(f.invoices, f.payments)
}

var (
	_ repository.InvoiceRepository  = (*fakeInvoiceRepo)(nil)
	_ repository.PaymentRepository  = (*fakePaymentRepo)(nil)
	_ repository.EmployeeRepository = (*fakeEmployeeRepo)(nil)
	_ repository.SupplierRepository = (*fakeSupplierRepo)(nil)
	_ TxRunner                      = (*fakeTxRunner)(nil)
)
