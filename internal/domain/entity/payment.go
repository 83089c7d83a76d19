package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de pago. "factura" y "sueldo" llevan ReferenceID (factura o empleado);
// "otro" se registra de forma manual sin referencia.
const (
	PaymentKindInvoice = "factura"
	PaymentKindSalary  = "sueldo"
	PaymentKindOther   = "otro"
)

// Medios de pago.
const (
	PaymentMethodTransfer = "transferencia"
	PaymentMethodCash     = "efectivo"
	PaymentMethodCheck    = "cheque"
	PaymentMethodCard     = "tarjeta"
)

// Payment representa un desembolso registrado. Nunca se actualiza en sitio:
// se crea (por pago de factura, pago de sueldo o registro manual) o se elimina.
type Payment struct {
	ID          string
	Kind        string
	ReferenceID string // id de la factura o del empleado; vacío para "otro"
	Description string
	Amount      decimal.Decimal
	PaymentDate time.Time
	Method      string
	CreatedAt   time.Time
}

// ValidPaymentKind indica si k es uno de los tipos conocidos.
func ValidPaymentKind(k string) bool {
	switch k {
	case PaymentKindInvoice, PaymentKindSalary, PaymentKindOther:
		return true
	}
	return false
}

// ValidPaymentMethod indica si m es uno de los medios conocidos.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentMethodTransfer, PaymentMethodCash, PaymentMethodCheck, PaymentMethodCard:
		return true
	}
	return false
}
