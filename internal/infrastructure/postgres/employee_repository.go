package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/gestion-pyme/internal/domain"
	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
	"github.com/tu-usuario/gestion-pyme/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// Campos de orden permitidos para el listado de empleados.
var employeeOrderColumns = map[string]string{
	"name":       "name",
	"position":   "position",
	"salary":     "salary",
	"hire_date":  "hire_date",
	"created_at": "created_at",
}

// EmployeeRepo implementación de EmployeeRepository (usable con pool o tx).
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

// List devuelve todos los empleados ordenados por el campo indicado.
func (r *EmployeeRepo) List(ctx context.Context, orderBy string, asc bool) ([]*entity.Employee, error) {
	query := `
		SELECT id, name, document, position, salary, hire_date, bank_name, bank_account, created_at, updated_at
		FROM employees ORDER BY ` + orderClause(employeeOrderColumns, orderBy, "name", asc)
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// GetByID obtiene un empleado por ID. Devuelve (nil, nil) si no existe.
func (r *EmployeeRepo) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	query := `
		SELECT id, name, document, position, salary, hire_date, bank_name, bank_account, created_at, updated_at
		FROM employees WHERE id = $1`
	e, err := scanEmployee(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

// Create persiste un nuevo empleado. Asigna ID si viene vacío.
func (r *EmployeeRepo) Create(ctx context.Context, employee *entity.Employee) error {
	if employee.ID == "" {
		employee.ID = uuid.New().String()
	}
	query := `
		INSERT INTO employees (id, name, document, position, salary, hire_date, bank_name, bank_account, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	var hireDate *time.Time
	if !employee.HireDate.IsZero() {
		hireDate = &employee.HireDate
	}
	_, err := r.q.Exec(ctx, query,
		employee.ID, employee.Name, nullIfEmpty(employee.Document), nullIfEmpty(employee.Position),
		employee.Salary, hireDate, nullIfEmpty(employee.BankName), nullIfEmpty(employee.BankAccount),
		employee.CreatedAt, employee.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// Update aplica una actualización parcial (COALESCE por campo nil del patch).
func (r *EmployeeRepo) Update(ctx context.Context, id string, patch entity.EmployeePatch) error {
	query := `
		UPDATE employees
		SET name         = COALESCE($2, name),
		    document     = COALESCE($3, document),
		    position     = COALESCE($4, position),
		    salary       = COALESCE($5, salary),
		    hire_date    = COALESCE($6, hire_date),
		    bank_name    = COALESCE($7, bank_name),
		    bank_account = COALESCE($8, bank_account),
		    updated_at   = now()
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		id, patch.Name, patch.Document, patch.Position, patch.Salary,
		patch.HireDate, patch.BankName, patch.BankAccount,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un empleado por ID. El chequeo de pagos dependientes corre en
// el caso de uso (los pagos referencian por reference_id sin FK dura).
func (r *EmployeeRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanEmployee(row pgx.Row) (*entity.Employee, error) {
	var e entity.Employee
	var document, position, bankName, bankAccount *string
	var hireDate *time.Time
	err := row.Scan(&e.ID, &e.Name, &document, &position, &e.Salary, &hireDate,
		&bankName, &bankAccount, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	e.Document = deref(document)
	e.Position = deref(position)
	e.BankName = deref(bankName)
	e.BankAccount = deref(bankAccount)
	if hireDate != nil {
		e.HireDate = *hireDate
	}
	return &e, nil
}
