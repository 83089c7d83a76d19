package repository

import (
	"context"

	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para Invoice.
type InvoiceRepository interface {
	// List devuelve todas las facturas con el nombre del proveedor resuelto
	// (LEFT JOIN; entity.NoSupplierName si no hay fila).
	List(ctx context.Context, orderBy string, asc bool) ([]*entity.Invoice, error)
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	Create(ctx context.Context, invoice *entity.Invoice) error
	Update(ctx context.Context, id string, patch entity.InvoicePatch) error
	// UpdateStatus cambia solo el estado (usado dentro de la transacción de pago).
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
	// CountBySupplier cuenta facturas que referencian al proveedor (chequeo de dependientes).
	CountBySupplier(ctx context.Context, supplierID string) (int, error)
}
