package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/banco-horas-api/internal/application/dto"
	"github.com/jhoicas/banco-horas-api/internal/domain"
	"github.com/jhoicas/banco-horas-api/internal/domain/entity"
	"github.com/jhoicas/banco-horas-api/internal/domain/repository"
	"github.com/jhoicas/banco-horas-api/pkg/jwt"
)

// ResetTokenTTL vigencia de un token de redefinición.
const ResetTokenTTL = 24 * time.Hour

// MinPasswordLength longitud mínima de una contraseña nueva.
const MinPasswordLength = 6

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// TxRunner ejecuta la redefinición de contraseña en una única transacción:
// el token se consume solo si la contraseña quedó guardada.
type TxRunner interface {
	RunReset(ctx context.Context, fn func(
		users repository.UserRepository,
		tokens repository.ResetTokenRepository,
	) error) error
}

// AuthUseCase login, redefinición de contraseña y gestión básica de cuentas.
type AuthUseCase struct {
	userRepo  repository.UserRepository
	tokenRepo repository.ResetTokenRepository
	tx        TxRunner
	jwtCfg    JWTConfig
	now       func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	tokenRepo repository.ResetTokenRepository,
	tx TxRunner,
	jwtCfg JWTConfig,
) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, tokenRepo: tokenRepo, tx: tx, jwtCfg: jwtCfg, now: time.Now}
}

// Login verifica usuario/contraseña, genera JWT y retorna token + usuario.
// Usuario inexistente y contraseña incorrecta dan el mismo error.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(ctx, strings.TrimSpace(in.Username))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.Active {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Identity{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// IssueResetToken genera un token de un solo uso para que el usuario redefina su
// contraseña. Solo lo invocan admins (lo garantiza el router).
func (uc *AuthUseCase) IssueResetToken(ctx context.Context, username, issuedBy string) (*dto.ResetTokenResponse, error) {
	user, err := uc.userRepo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	value, err := newTokenValue()
	if err != nil {
		return nil, err
	}
	now := uc.now()
	t := &entity.ResetToken{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Token:     value,
		ExpiresAt: now.Add(ResetTokenTTL),
		CreatedBy: issuedBy,
		CreatedAt: now,
	}
	if err := uc.tokenRepo.Create(ctx, t); err != nil {
		return nil, err
	}
	return &dto.ResetTokenResponse{Username: user.Username, Token: t.Token, ExpiresAt: t.ExpiresAt}, nil
}

// ResetPassword cambia la contraseña si el token es del usuario, no se usó y no expiró.
func (uc *AuthUseCase) ResetPassword(ctx context.Context, in dto.ResetPasswordRequest) error {
	if len(in.NewPassword) < MinPasswordLength {
		return fmt.Errorf("%w: la contraseña debe tener al menos %d caracteres", domain.ErrInvalidInput, MinPasswordLength)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := uc.now()
	return uc.tx.RunReset(ctx, func(users repository.UserRepository, tokens repository.ResetTokenRepository) error {
		user, err := users.GetByUsername(ctx, strings.TrimSpace(in.Username))
		if err != nil {
			return err
		}
		if user == nil {
			return domain.ErrInvalidResetToken
		}
		t, err := tokens.GetUnused(ctx, user.ID, strings.TrimSpace(in.Token))
		if err != nil {
			return err
		}
		if t == nil || !t.Valid(now) {
			return domain.ErrInvalidResetToken
		}
		user.PasswordHash = string(hash)
		user.UpdatedAt = now
		if err := users.Update(ctx, user); err != nil {
			return err
		}
		return tokens.MarkUsed(ctx, t.ID)
	})
}

// ListUsers todas las cuentas (sin hashes).
func (uc *AuthUseCase) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	list, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

// SeedAdmin crea la cuenta admin inicial si no existe ningún admin. Sin
// contraseña configurada no crea nada y lo deja registrado en el log.
func (uc *AuthUseCase) SeedAdmin(ctx context.Context, username, password string, log zerolog.Logger) error {
	n, err := uc.userRepo.CountByRole(ctx, entity.RoleAdmin)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	if password == "" {
		log.Warn().Msg("no hay admins y ADMIN_PASSWORD está vacío: no se crea la cuenta inicial")
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := uc.now()
	admin := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, admin); err != nil {
		return err
	}
	log.Info().Str("username", username).Msg("cuenta admin inicial creada")
	return nil
}

// newTokenValue 24 bytes aleatorios en base64 url-safe (32 caracteres).
func newTokenValue() (string, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generar token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
