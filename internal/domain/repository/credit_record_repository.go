package repository

import (
	"context"

	"github.com/jhoicas/banco-horas-api/internal/domain/entity"
)

// CreditRecordRepository define el puerto de persistencia para CreditRecord (DIP).
// Los listados se ordenan por día trabajado descendente.
type CreditRecordRepository interface {
	Create(ctx context.Context, r *entity.CreditRecord) error
	GetByID(ctx context.Context, id string) (*entity.CreditRecord, error)
	Update(ctx context.Context, r *entity.CreditRecord) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.CreditRecord, error)
	ListByEmployee(ctx context.Context, nf string) ([]*entity.CreditRecord, error)
	// ListWithDeadline devuelve los registros que tienen plazo máximo.
	ListWithDeadline(ctx context.Context) ([]*entity.CreditRecord, error)
}
