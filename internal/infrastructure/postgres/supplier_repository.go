package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/gestion-pyme/internal/domain"
	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
	"github.com/tu-usuario/gestion-pyme/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// Campos de orden permitidos para el listado de proveedores.
var supplierOrderColumns = map[string]string{
	"name":       "name",
	"cuit":       "cuit",
	"created_at": "created_at",
}

// SupplierRepo implementación de SupplierRepository (usable con pool o tx).
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// List devuelve todos los proveedores ordenados por el campo indicado.
func (r *SupplierRepo) List(ctx context.Context, orderBy string, asc bool) ([]*entity.Supplier, error) {
	query := `
		SELECT id, name, cuit, phone, email, bank_name, bank_account, created_at, updated_at
		FROM suppliers ORDER BY ` + orderClause(supplierOrderColumns, orderBy, "name", asc)
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// GetByID obtiene un proveedor por ID. Devuelve (nil, nil) si no existe.
func (r *SupplierRepo) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	query := `
		SELECT id, name, cuit, phone, email, bank_name, bank_account, created_at, updated_at
		FROM suppliers WHERE id = $1`
	s, err := scanSupplier(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return s, nil
}

// Create persiste un nuevo proveedor. Asigna ID si viene vacío.
func (r *SupplierRepo) Create(ctx context.Context, supplier *entity.Supplier) error {
	if supplier.ID == "" {
		supplier.ID = uuid.New().String()
	}
	query := `
		INSERT INTO suppliers (id, name, cuit, phone, email, bank_name, bank_account, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		supplier.ID, supplier.Name, nullIfEmpty(supplier.CUIT), nullIfEmpty(supplier.Phone),
		nullIfEmpty(supplier.Email), nullIfEmpty(supplier.BankName), nullIfEmpty(supplier.BankAccount),
		supplier.CreatedAt, supplier.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// Update aplica una actualización parcial: los campos nil del patch conservan
// el valor almacenado (COALESCE).
func (r *SupplierRepo) Update(ctx context.Context, id string, patch entity.SupplierPatch) error {
	query := `
		UPDATE suppliers
		SET name         = COALESCE($2, name),
		    cuit         = COALESCE($3, cuit),
		    phone        = COALESCE($4, phone),
		    email        = COALESCE($5, email),
		    bank_name    = COALESCE($6, bank_name),
		    bank_account = COALESCE($7, bank_account),
		    updated_at   = now()
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		id, patch.Name, patch.CUIT, patch.Phone, patch.Email, patch.BankName, patch.BankAccount,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update supplier: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un proveedor por ID. Si hay facturas que lo referencian la FK
// (ON DELETE RESTRICT) corta el borrado y se informa ErrHasDependents.
func (r *SupplierRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrHasDependents
		}
		return fmt.Errorf("delete supplier: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanSupplier(row pgx.Row) (*entity.Supplier, error) {
	var s entity.Supplier
	var cuit, phone, email, bankName, bankAccount *string
	err := row.Scan(&s.ID, &s.Name, &cuit, &phone, &email, &bankName, &bankAccount, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	s.CUIT = deref(cuit)
	s.Phone = deref(phone)
	s.Email = deref(email)
	s.BankName = deref(bankName)
	s.BankAccount = deref(bankAccount)
	return &s, nil
}
