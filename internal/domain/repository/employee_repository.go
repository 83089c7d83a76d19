package repository

import (
	"context"

	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia para Employee.
type EmployeeRepository interface {
	List(ctx context.Context, orderBy string, asc bool) ([]*entity.Employee, error)
	GetByID(ctx context.Context, id string) (*entity.Employee, error)
	Create(ctx context.Context, employee *entity.Employee) error
	Update(ctx context.Context, id string, patch entity.EmployeePatch) error
	Delete(ctx context.Context, id string) error
}
