package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee representa un empleado en nómina con su sueldo vigente.
type Employee struct {
	ID          string
	Name        string
	Document    string // DNI
	Position    string
	Salary      decimal.Decimal
	HireDate    time.Time
	BankName    string
	BankAccount string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
