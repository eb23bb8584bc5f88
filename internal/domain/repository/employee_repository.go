package repository

import (
	"context"

	"github.com/jhoicas/banco-horas-api/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia para Employee (DIP).
// Delete elimina en cascada los registros de horas del servidor.
type EmployeeRepository interface {
	Create(ctx context.Context, emp *entity.Employee) error
	GetByNF(ctx context.Context, nf string) (*entity.Employee, error)
	Update(ctx context.Context, emp *entity.Employee) error
	List(ctx context.Context) ([]*entity.Employee, error)
	Count(ctx context.Context) (int, error)
	Delete(ctx context.Context, nf string) error
}
