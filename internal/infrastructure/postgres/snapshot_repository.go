package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/banco-horas-api/internal/domain/entity"
	"github.com/jhoicas/banco-horas-api/internal/domain/repository"
)

var _ repository.SnapshotRepository = (*SnapshotRepo)(nil)

// SnapshotRepo lee todas las tablas dentro de una única transacción de solo lectura.
type SnapshotRepo struct {
	pool *pgxpool.Pool
}

func NewSnapshotRepository(pool *pgxpool.Pool) *SnapshotRepo {
	return &SnapshotRepo{pool: pool}
}

// Snapshot usa REPEATABLE READ para que todas las tablas correspondan al mismo instante.
func (r *SnapshotRepo) Snapshot(ctx context.Context) (*entity.Snapshot, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return nil, fmt.Errorf("begin snapshot: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	snap := &entity.Snapshot{TakenAt: time.Now().UTC()}
	if snap.Employees, err = NewEmployeeRepository(tx).List(ctx); err != nil {
		return nil, err
	}
	if snap.Records, err = NewCreditRecordRepository(tx).List(ctx); err != nil {
		return nil, err
	}
	if snap.Users, err = NewUserRepository(tx).List(ctx); err != nil {
		return nil, err
	}
	if snap.ResetTokens, err = NewResetTokenRepository(tx).List(ctx); err != nil {
		return nil, err
	}
	if snap.AlertLogs, err = NewAlertLogRepository(tx).List(ctx); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit snapshot: %w", err)
	}
	return snap, nil
}
