package repository

import (
	"context"

	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
)

// PaymentRepository define el puerto de persistencia para Payment.
// Los pagos no se actualizan en sitio: solo alta, baja y lectura.
type PaymentRepository interface {
	List(ctx context.Context, orderBy string, asc bool) ([]*entity.Payment, error)
	GetByID(ctx context.Context, id string) (*entity.Payment, error)
	Create(ctx context.Context, payment *entity.Payment) error
	Delete(ctx context.Context, id string) error
	// CountByReference cuenta pagos que referencian a la factura o empleado dado.
	CountByReference(ctx context.Context, referenceID string) (int, error)
}
