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

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// Campos de orden permitidos para el listado de pagos.
var paymentOrderColumns = map[string]string{
	"payment_date": "payment_date",
	"amount":       "amount",
	"kind":         "kind",
	"created_at":   "created_at",
}

// PaymentRepo implementación de PaymentRepository (usable con pool o tx).
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// List devuelve todos los pagos ordenados por el campo indicado.
func (r *PaymentRepo) List(ctx context.Context, orderBy string, asc bool) ([]*entity.Payment, error) {
	query := `
		SELECT id, kind, reference_id, description, amount, payment_date, method, created_at
		FROM payments ORDER BY ` + orderClause(paymentOrderColumns, orderBy, "payment_date", asc)
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// GetByID obtiene un pago por ID. Devuelve (nil, nil) si no existe.
func (r *PaymentRepo) GetByID(ctx context.Context, id string) (*entity.Payment, error) {
	query := `
		SELECT id, kind, reference_id, description, amount, payment_date, method, created_at
		FROM payments WHERE id = $1`
	p, err := scanPayment(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return p, nil
}

// Create persiste un nuevo pago. Asigna ID si viene vacío.
func (r *PaymentRepo) Create(ctx context.Context, payment *entity.Payment) error {
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	query := `
		INSERT INTO payments (id, kind, reference_id, description, amount, payment_date, method, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		payment.ID, payment.Kind, nullIfEmpty(payment.ReferenceID), payment.Description,
		payment.Amount, payment.PaymentDate, payment.Method, payment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// Delete elimina un pago por ID.
func (r *PaymentRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountByReference cuenta pagos que referencian a la factura o empleado dado.
func (r *PaymentRepo) CountByReference(ctx context.Context, referenceID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM payments WHERE reference_id = $1`, referenceID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count payments by reference: %w", err)
	}
	return n, nil
}

func scanPayment(row pgx.Row) (*entity.Payment, error) {
	var p entity.Payment
	var referenceID *string
	err := row.Scan(&p.ID, &p.Kind, &referenceID, &p.Description, &p.Amount,
		&p.PaymentDate, &p.Method, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	p.ReferenceID = deref(referenceID)
	return &p, nil
}
