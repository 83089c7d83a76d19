package dto

import "github.com/shopspring/decimal"

// CreateEmployeeRequest body para POST /api/employees.
type CreateEmployeeRequest struct {
	Name        string          `json:"name"`
	Document    string          `json:"document,omitempty"`
	Position    string          `json:"position,omitempty"`
	Salary      decimal.Decimal `json:"salary"`
	HireDate    string          `json:"hire_date,omitempty"`
	BankName    string          `json:"bank_name,omitempty"`
	BankAccount string          `json:"bank_account,omitempty"`
}

// UpdateEmployeeRequest body para PUT /api/employees/:id.
// Campos en null/ausentes conservan el valor almacenado.
type UpdateEmployeeRequest struct {
	Name        *string          `json:"name"`
	Document    *string          `json:"document"`
	Position    *string          `json:"position"`
	Salary      *decimal.Decimal `json:"salary"`
	HireDate    *string          `json:"hire_date"`
	BankName    *string          `json:"bank_name"`
	BankAccount *string          `json:"bank_account"`
}

// EmployeeResponse empleado en respuestas.
type EmployeeResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Document    string          `json:"document,omitempty"`
	Position    string          `json:"position,omitempty"`
	Salary      decimal.Decimal `json:"salary"`
	HireDate    string          `json:"hire_date,omitempty"`
	BankName    string          `json:"bank_name,omitempty"`
	BankAccount string          `json:"bank_account,omitempty"`
}
