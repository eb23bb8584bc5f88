package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/banco-horas-api/internal/domain"
	"github.com/jhoicas/banco-horas-api/internal/domain/entity"
	"github.com/jhoicas/banco-horas-api/internal/domain/repository"
)

var _ repository.ResetTokenRepository = (*ResetTokenRepo)(nil)

// ResetTokenRepo tokens de redefinición de contraseña.
type ResetTokenRepo struct {
	q Querier
}

func NewResetTokenRepository(q Querier) *ResetTokenRepo {
	return &ResetTokenRepo{q: q}
}

// Create persiste un token emitido por un admin.
func (r *ResetTokenRepo) Create(ctx context.Context, t *entity.ResetToken) error {
	query := `
		INSERT INTO reset_tokens (id, user_id, token, expires_at, used, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query, t.ID, t.UserID, t.Token, t.ExpiresAt, t.Used, t.CreatedBy, t.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert reset token: %w", err)
	}
	return nil
}

// GetUnused token no usado del usuario; la expiración la valida el caso de uso.
func (r *ResetTokenRepo) GetUnused(ctx context.Context, userID, token string) (*entity.ResetToken, error) {
	query := `
		SELECT id, user_id, token, expires_at, used, created_by, created_at
		FROM reset_tokens WHERE user_id = $1 AND token = $2 AND NOT used`
	var t entity.ResetToken
	err := r.q.QueryRow(ctx, query, userID, token).Scan(
		&t.ID, &t.UserID, &t.Token, &t.ExpiresAt, &t.Used, &t.CreatedBy, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reset token: %w", err)
	}
	return &t, nil
}

// MarkUsed invalida el token.
func (r *ResetTokenRepo) MarkUsed(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `UPDATE reset_tokens SET used = TRUE WHERE id = $1`, id); err != nil {
		return fmt.Errorf("mark reset token used: %w", err)
	}
	return nil
}

// List todos los tokens, usados o no. Solo lo usa la copia de seguridad.
func (r *ResetTokenRepo) List(ctx context.Context) ([]*entity.ResetToken, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, user_id, token, expires_at, used, created_by, created_at
		FROM reset_tokens ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list reset tokens: %w", err)
	}
	defer rows.Close()
	var list []*entity.ResetToken
	for rows.Next() {
		var t entity.ResetToken
		if err := rows.Scan(&t.ID, &t.UserID, &t.Token, &t.ExpiresAt, &t.Used, &t.CreatedBy, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan reset token: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
