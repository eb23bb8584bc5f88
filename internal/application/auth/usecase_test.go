package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/banco-horas-api/internal/application/auth"
	"github.com/jhoicas/banco-horas-api/internal/application/dto"
	"github.com/jhoicas/banco-horas-api/internal/domain"
	"github.com/jhoicas/banco-horas-api/internal/domain/entity"
	"github.com/jhoicas/banco-horas-api/internal/domain/repository"
	"github.com/jhoicas/banco-horas-api/pkg/jwt"
)

// ── Mocks ──

type mockUserRepo struct {
	users map[string]*entity.User // por username
}

func newMockUserRepo(list ...*entity.User) *mockUserRepo {
	m := &mockUserRepo{users: make(map[string]*entity.User)}
	for _, u := range list {
		m.users[u.Username] = u
	}
	return m
}

func (m *mockUserRepo) Create(_ context.Context, u *entity.User) error {
	if _, ok := m.users[u.Username]; ok {
		return domain.ErrDuplicate
	}
	m.users[u.Username] = u
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	return m.users[username], nil
}

func (m *mockUserRepo) Update(_ context.Context, u *entity.User) error {
	m.users[u.Username] = u
	return nil
}

func (m *mockUserRepo) List(_ context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *mockUserRepo) CountByRole(_ context.Context, role string) (int, error) {
	n := 0
	for _, u := range m.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func (m *mockUserRepo) ListAlertRecipients(context.Context) ([]*entity.User, error) { return nil, nil }

type mockTokenRepo struct {
	tokens []*entity.ResetToken
}

func (m *mockTokenRepo) Create(_ context.Context, t *entity.ResetToken) error {
	m.tokens = append(m.tokens, t)
	return nil
}

func (m *mockTokenRepo) GetUnused(_ context.Context, userID, token string) (*entity.ResetToken, error) {
	for _, t := range m.tokens {
		if t.UserID == userID && t.Token == token && !t.Used {
			return t, nil
		}
	}
	return nil, nil
}

func (m *mockTokenRepo) MarkUsed(_ context.Context, id string) error {
	for _, t := range m.tokens {
		if t.ID == id {
			t.Used = true
		}
	}
	return nil
}

// inlineTx ejecuta fn sobre los mismos repos, sin transacción real.
type inlineTx struct {
	users  repository.UserRepository
	tokens repository.ResetTokenRepository
}

func (tx inlineTx) RunReset(_ context.Context, fn func(repository.UserRepository, repository.ResetTokenRepository) error) error {
	return fn(tx.users, tx.tokens)
}

// ── Helpers ──

const secret = "secreto-de-pruebas"

func hash(t *testing.T, pw string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func newUC(t *testing.T) (*auth.AuthUseCase, *mockUserRepo, *mockTokenRepo) {
	users := newMockUserRepo(
		&entity.User{ID: "u1", Username: "maria", PasswordHash: hash(t, "segredo1"), Role: entity.RoleUser, Active: true},
		&entity.User{ID: "u2", Username: "inativo", PasswordHash: hash(t, "segredo1"), Role: entity.RoleUser, Active: false},
	)
	tokens := &mockTokenRepo{}
	uc := auth.NewAuthUseCase(users, tokens, inlineTx{users: users, tokens: tokens},
		auth.JWTConfig{Secret: secret, ExpMinutes: 10, Issuer: "test"})
	return uc, users, tokens
}

// ── Tests ──

func TestLogin_GeneraTokenConRol(t *testing.T) {
	uc, _, _ := newUC(t)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "maria", Password: "segredo1"})
	require.NoError(t, err)
	assert.Equal(t, "maria", out.User.Username)

	id, err := jwt.Parse(secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", id.UserID)
	assert.Equal(t, entity.RoleUser, id.Role)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc, _, _ := newUC(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "maria", Password: "errada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Username: "ninguem", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "usuario inexistente no se distingue de contraseña errada")
}

func TestLogin_CuentaInactiva(t *testing.T) {
	uc, _, _ := newUC(t)
	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "inativo", Password: "segredo1"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestResetPassword_FlujoCompleto(t *testing.T) {
	uc, users, tokens := newUC(t)
	ctx := context.Background()

	issued, err := uc.IssueResetToken(ctx, "maria", "admin")
	require.NoError(t, err)
	assert.Len(t, issued.Token, 32)
	require.Len(t, tokens.tokens, 1)
	assert.Equal(t, "admin", tokens.tokens[0].CreatedBy)
	assert.WithinDuration(t, time.Now().Add(auth.ResetTokenTTL), issued.ExpiresAt, time.Minute)

	err = uc.ResetPassword(ctx, dto.ResetPasswordRequest{Username: "maria", Token: issued.Token, NewPassword: "nova-senha"})
	require.NoError(t, err)
	assert.True(t, tokens.tokens[0].Used)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(users.users["maria"].PasswordHash), []byte("nova-senha")))

	// un solo uso
	err = uc.ResetPassword(ctx, dto.ResetPasswordRequest{Username: "maria", Token: issued.Token, NewPassword: "outra-senha"})
	assert.ErrorIs(t, err, domain.ErrInvalidResetToken)
}

func TestResetPassword_TokenExpirado(t *testing.T) {
	uc, _, tokens := newUC(t)
	tokens.tokens = append(tokens.tokens, &entity.ResetToken{
		ID: "t1", UserID: "u1", Token: "abc", ExpiresAt: time.Now().Add(-time.Minute),
	})

	err := uc.ResetPassword(context.Background(), dto.ResetPasswordRequest{Username: "maria", Token: "abc", NewPassword: "nova-senha"})
	assert.ErrorIs(t, err, domain.ErrInvalidResetToken)
	assert.False(t, tokens.tokens[0].Used)
}

func TestResetPassword_ContrasenaCorta(t *testing.T) {
	uc, _, _ := newUC(t)
	err := uc.ResetPassword(context.Background(), dto.ResetPasswordRequest{Username: "maria", Token: "abc", NewPassword: "123"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestIssueResetToken_UsuarioInexistente(t *testing.T) {
	uc, _, _ := newUC(t)
	_, err := uc.IssueResetToken(context.Background(), "ninguem", "admin")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestSeedAdmin(t *testing.T) {
	uc, users, _ := newUC(t)
	ctx := context.Background()

	require.NoError(t, uc.SeedAdmin(ctx, "admin", "", zerolog.Nop()))
	assert.NotContains(t, users.users, "admin", "sin contraseña no se crea")

	require.NoError(t, uc.SeedAdmin(ctx, "admin", "troque-me", zerolog.Nop()))
	require.Contains(t, users.users, "admin")
	assert.Equal(t, entity.RoleAdmin, users.users["admin"].Role)
	assert.True(t, users.users["admin"].Active)

	// ya existe un admin: no hace nada
	require.NoError(t, uc.SeedAdmin(ctx, "otro-admin", "x", zerolog.Nop()))
	assert.NotContains(t, users.users, "otro-admin")
}
