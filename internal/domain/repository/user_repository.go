package repository

import (
	"context"

	"github.com/jhoicas/banco-horas-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	List(ctx context.Context) ([]*entity.User, error)
	CountByRole(ctx context.Context, role string) (int, error)
	// ListAlertRecipients cuentas activas con rol user y email informado.
	ListAlertRecipients(ctx context.Context) ([]*entity.User, error)
}
