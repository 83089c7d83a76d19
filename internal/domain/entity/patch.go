package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Patches para actualizaciones parciales: los campos en nil conservan el valor
// almacenado (el adaptador usa COALESCE). Un puntero no nil pisa el campo,
// incluso con cadena vacía o monto cero.

// SupplierPatch campos editables de un proveedor.
type SupplierPatch struct {
	Name        *string
	CUIT        *string
	Phone       *string
	Email       *string
	BankName    *string
	BankAccount *string
}

// InvoicePatch campos editables de una factura.
type InvoicePatch struct {
	SupplierID  *string
	Number      *string
	Amount      *decimal.Decimal
	IssueDate   *time.Time
	DueDate     *time.Time
	Status      *string
	Description *string
}

// EmployeePatch campos editables de un empleado.
type EmployeePatch struct {
	Name        *string
	Document    *string
	Position    *string
	Salary      *decimal.Decimal
	HireDate    *time.Time
	BankName    *string
	BankAccount *string
}
