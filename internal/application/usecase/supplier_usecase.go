package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/tu-usuario/gestion-pyme/internal/application/dto"
	"github.com/tu-usuario/gestion-pyme/internal/domain"
	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
	"github.com/tu-usuario/gestion-pyme/internal/domain/repository"
)

// SupplierUseCase casos de uso para proveedores.
type SupplierUseCase struct {
	suppliers repository.SupplierRepository
	invoices  repository.InvoiceRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(suppliers repository.SupplierRepository, invoices repository.InvoiceRepository) *SupplierUseCase {
	return &SupplierUseCase{suppliers: suppliers, invoices: invoices}
}

// List lista todos los proveedores.
func (uc *SupplierUseCase) List(ctx context.Context, q dto.ListQuery) ([]*dto.SupplierResponse, error) {
	list, err := uc.suppliers.List(ctx, q.OrderBy, q.Asc)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		out = append(out, supplierResponse(s))
	}
	return out, nil
}

// Create crea un nuevo proveedor.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	supplier := &entity.Supplier{
		Name:        strings.TrimSpace(in.Name),
		CUIT:        in.CUIT,
		Phone:       in.Phone,
		Email:       in.Email,
		BankName:    in.BankName,
		BankAccount: in.BankAccount,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.suppliers.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return supplierResponse(supplier), nil
}

// Update aplica una actualización parcial y devuelve el proveedor resultante.
func (uc *SupplierUseCase) Update(ctx context.Context, id string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	patch := entity.SupplierPatch{
		Name:        in.Name,
		CUIT:        in.CUIT,
		Phone:       in.Phone,
		Email:       in.Email,
		BankName:    in.BankName,
		BankAccount: in.BankAccount,
	}
	if err := uc.suppliers.Update(ctx, id, patch); err != nil {
		return nil, err
	}
	supplier, err := uc.suppliers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	return supplierResponse(supplier), nil
}

// Delete elimina un proveedor. Se bloquea si tiene facturas asociadas: borrar
// un maestro no debe dejar dependientes huérfanos en silencio.
func (uc *SupplierUseCase) Delete(ctx context.Context, id string) error {
	n, err := uc.invoices.CountBySupplier(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrHasDependents
	}
	return uc.suppliers.Delete(ctx, id)
}

func supplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:          s.ID,
		Name:        s.Name,
		CUIT:        s.CUIT,
		Phone:       s.Phone,
		Email:       s.Email,
		BankName:    s.BankName,
		BankAccount: s.BankAccount,
	}
}
