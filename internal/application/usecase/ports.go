package usecase

import (
	"context"

	"github.com/tu-usuario/gestion-pyme/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción, con repositorios atados a ella.
// El pago de una factura escribe el pago y el cambio de estado en una sola
// transacción: nunca queda un pago registrado para una factura aún pendiente.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		invoiceRepo repository.InvoiceRepository,
		paymentRepo repository.PaymentRepository,
	) error) error
}
