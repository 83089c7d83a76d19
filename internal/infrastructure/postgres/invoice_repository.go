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

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// Campos de orden permitidos para el listado de facturas.
var invoiceOrderColumns = map[string]string{
	"number":     "i.number",
	"amount":     "i.amount",
	"issue_date": "i.issue_date",
	"due_date":   "i.due_date",
	"status":     "i.status",
	"supplier":   "supplier_name",
	"created_at": "i.created_at",
}

const invoiceSelect = `
	SELECT i.id, i.supplier_id, i.number, i.amount, i.issue_date, i.due_date,
	       i.status, i.description, i.created_at, i.updated_at,
	       COALESCE(s.name, '` + entity.NoSupplierName + `') AS supplier_name
	FROM invoices i
	LEFT JOIN suppliers s ON s.id = i.supplier_id`

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// List devuelve todas las facturas con el nombre del proveedor resuelto.
func (r *InvoiceRepo) List(ctx context.Context, orderBy string, asc bool) ([]*entity.Invoice, error) {
	query := invoiceSelect + ` ORDER BY ` + orderClause(invoiceOrderColumns, orderBy, "i.due_date", asc)
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// GetByID obtiene una factura por ID (con nombre de proveedor). (nil, nil) si no existe.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	inv, err := scanInvoice(r.q.QueryRow(ctx, invoiceSelect+` WHERE i.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

// Create persiste una nueva factura. Asigna ID si viene vacío.
func (r *InvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	if invoice.ID == "" {
		invoice.ID = uuid.New().String()
	}
	query := `
		INSERT INTO invoices (id, supplier_id, number, amount, issue_date, due_date, status, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		invoice.ID, invoice.SupplierID, invoice.Number, invoice.Amount,
		invoice.IssueDate, invoice.DueDate, invoice.Status, nullIfEmpty(invoice.Description),
		invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound // proveedor inexistente
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// Update aplica una actualización parcial (COALESCE por campo nil del patch).
func (r *InvoiceRepo) Update(ctx context.Context, id string, patch entity.InvoicePatch) error {
	query := `
		UPDATE invoices
		SET supplier_id = COALESCE($2, supplier_id),
		    number      = COALESCE($3, number),
		    amount      = COALESCE($4, amount),
		    issue_date  = COALESCE($5, issue_date),
		    due_date    = COALESCE($6, due_date),
		    status      = COALESCE($7, status),
		    description = COALESCE($8, description),
		    updated_at  = now()
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		id, patch.SupplierID, patch.Number, patch.Amount,
		patch.IssueDate, patch.DueDate, patch.Status, patch.Description,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStatus cambia solo el estado de la factura.
func (r *InvoiceRepo) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE invoices SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update invoice status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una factura por ID. Pagos que la referencian cortan el borrado.
func (r *InvoiceRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrHasDependents
		}
		return fmt.Errorf("delete invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountBySupplier cuenta facturas del proveedor (chequeo de dependientes).
func (r *InvoiceRepo) CountBySupplier(ctx context.Context, supplierID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM invoices WHERE supplier_id = $1`, supplierID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count invoices by supplier: %w", err)
	}
	return n, nil
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	var description *string
	err := row.Scan(
		&inv.ID, &inv.SupplierID, &inv.Number, &inv.Amount, &inv.IssueDate, &inv.DueDate,
		&inv.Status, &description, &inv.CreatedAt, &inv.UpdatedAt, &inv.SupplierName,
	)
	if err != nil {
		return nil, err
	}
	inv.Description = deref(description)
	return &inv, nil
}
