package repository

import (
	"context"
	"time"

	"github.com/jhoicas/banco-horas-api/internal/domain/entity"
)

// AlertLogRepository registro de avisos ya enviados (registro, día). Solo inserción.
type AlertLogRepository interface {
	Exists(ctx context.Context, recordID string, day time.Time) (bool, error)
	Create(ctx context.Context, log *entity.AlertLog) error
}
