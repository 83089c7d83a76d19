package repository

import (
	"context"

	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier.
type SupplierRepository interface {
	// List devuelve todos los proveedores ordenados por el campo indicado.
	// orderBy se valida contra una lista blanca; un campo desconocido cae en "name".
	List(ctx context.Context, orderBy string, asc bool) ([]*entity.Supplier, error)
	GetByID(ctx context.Context, id string) (*entity.Supplier, error)
	Create(ctx context.Context, supplier *entity.Supplier) error
	Update(ctx context.Context, id string, patch entity.SupplierPatch) error
	Delete(ctx context.Context, id string) error
}
