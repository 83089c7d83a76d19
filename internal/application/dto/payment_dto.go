package dto

import "github.com/shopspring/decimal"

// CreatePaymentRequest body para POST /api/payments (registro manual).
// Kind vacío -> otro; Method vacío -> transferencia; PaymentDate vacío -> hoy.
type CreatePaymentRequest struct {
	Kind        string          `json:"kind,omitempty"`
	ReferenceID string          `json:"reference_id,omitempty"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate string          `json:"payment_date,omitempty"`
	Method      string          `json:"method,omitempty"`
}

// PaymentFilter filtros del listado (GET /api/payments).
// Kind filtra por tipo exacto; Month en formato "2006-01" filtra por mes calendario.
type PaymentFilter struct {
	Kind  string `query:"kind"`
	Month string `query:"month"`
}

// PaymentResponse pago en respuestas.
type PaymentResponse struct {
	ID          string          `json:"id"`
	Kind        string          `json:"kind"`
	ReferenceID string          `json:"reference_id,omitempty"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate string          `json:"payment_date"`
	Method      string          `json:"method"`
}

// PaymentDefaultsResponse valores sugeridos para el formulario de registro
// manual (GET /api/payments/defaults?kind=&reference_id=). El usuario puede
// pisar cualquiera antes de confirmar.
type PaymentDefaultsResponse struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Method      string          `json:"method"`
	PaymentDate string          `json:"payment_date"`
}
