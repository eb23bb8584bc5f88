package repository

import (
	"context"

	"github.com/jhoicas/banco-horas-api/internal/domain/entity"
)

// ResetTokenRepository define el puerto de persistencia para ResetToken (DIP).
type ResetTokenRepository interface {
	Create(ctx context.Context, t *entity.ResetToken) error
	// GetUnused busca un token no usado del usuario; nil si no existe.
	GetUnused(ctx context.Context, userID, token string) (*entity.ResetToken, error)
	MarkUsed(ctx context.Context, id string) error
}
