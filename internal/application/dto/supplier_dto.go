package dto

// CreateSupplierRequest body para POST /api/suppliers.
type CreateSupplierRequest struct {
	Name        string `json:"name"`
	CUIT        string `json:"cuit,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	BankName    string `json:"bank_name,omitempty"`
	BankAccount string `json:"bank_account,omitempty"`
}

// UpdateSupplierRequest body para PUT /api/suppliers/:id.
// Campos en null/ausentes conservan el valor almacenado.
type UpdateSupplierRequest struct {
	Name        *string `json:"name"`
	CUIT        *string `json:"cuit"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	BankName    *string `json:"bank_name"`
	BankAccount *string `json:"bank_account"`
}

// SupplierResponse proveedor en respuestas.
type SupplierResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	CUIT        string `json:"cuit,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	BankName    string `json:"bank_name,omitempty"`
	BankAccount string `json:"bank_account,omitempty"`
}
