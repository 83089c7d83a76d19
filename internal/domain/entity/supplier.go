package entity

import "time"

// Supplier representa un proveedor de la organización.
type Supplier struct {
	ID          string
	Name        string
	CUIT        string // CUIT/CUIL (Argentina)
	Phone       string
	Email       string
	BankName    string
	BankAccount string // CBU o alias
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
