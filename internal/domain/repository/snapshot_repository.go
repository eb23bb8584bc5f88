package repository

import (
	"context"

	"github.com/jhoicas/banco-horas-api/internal/domain/entity"
)

// SnapshotRepository lee todos los datos del banco de horas en una única vista consistente.
type SnapshotRepository interface {
	Snapshot(ctx context.Context) (*entity.Snapshot, error)
}
