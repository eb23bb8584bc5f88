package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/banco-horas-api/internal/domain/entity"
	"github.com/jhoicas/banco-horas-api/internal/domain/repository"
)

var _ repository.AlertLogRepository = (*AlertLogRepo)(nil)

// AlertLogRepo registro de avisos enviados.
type AlertLogRepo struct {
	q Querier
}

func NewAlertLogRepository(q Querier) *AlertLogRepo {
	return &AlertLogRepo{q: q}
}

// Exists indica si ya se avisó del registro en el día dado.
func (r *AlertLogRepo) Exists(ctx context.Context, recordID string, day time.Time) (bool, error) {
	var ok bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM alert_logs WHERE record_id = $1 AND alert_date = $2)`,
		recordID, day,
	).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("exists alert log: %w", err)
	}
	return ok, nil
}

// Create inserta la marca. Una marca repetida para el mismo día se ignora.
func (r *AlertLogRepo) Create(ctx context.Context, l *entity.AlertLog) error {
	query := `
		INSERT INTO alert_logs (id, record_id, alert_date, sent_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (record_id, alert_date) DO NOTHING`
	if _, err := r.q.Exec(ctx, query, l.ID, l.RecordID, l.AlertDate, l.SentAt); err != nil {
		return fmt.Errorf("insert alert log: %w", err)
	}
	return nil
}

// List todo el registro de avisos. Solo lo usa la copia de seguridad.
func (r *AlertLogRepo) List(ctx context.Context) ([]*entity.AlertLog, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, record_id, alert_date, sent_at
		FROM alert_logs ORDER BY alert_date, record_id`)
	if err != nil {
		return nil, fmt.Errorf("list alert logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.AlertLog
	for rows.Next() {
		var l entity.AlertLog
		if err := rows.Scan(&l.ID, &l.RecordID, &l.AlertDate, &l.SentAt); err != nil {
			return nil, fmt.Errorf("scan alert log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
