package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/banco-horas-api/internal/application/dto"
	"github.com/jhoicas/banco-horas-api/internal/application/usecase"
	"github.com/jhoicas/banco-horas-api/internal/domain"
	"github.com/jhoicas/banco-horas-api/internal/domain/entity"
)

func TestUserCreate_PorDefectoRolUser(t *testing.T) {
	repo := newMockUserRepo()
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Username: " maria ", Password: "segredo1", Email: "maria@example.org",
	})
	require.NoError(t, err)
	assert.Equal(t, "maria", out.Username)
	assert.Equal(t, entity.RoleUser, out.Role)
	assert.True(t, out.Active)

	stored := repo.items["maria"]
	require.NotNil(t, stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("segredo1")))
	assert.True(t, stored.ReceivesAlerts())
}

func TestUserCreate_Validaciones(t *testing.T) {
	uc := usecase.NewUserUseCase(newMockUserRepo())
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateUserRequest{Username: "", Password: "segredo1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateUserRequest{Username: "maria", Password: "123"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateUserRequest{Username: "maria", Password: "segredo1", Role: "root"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateUserRequest{Username: "maria", Password: "segredo1"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateUserRequest{Username: "maria", Password: "segredo1"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestUserUpdate_DesactivaYCambiaEmail(t *testing.T) {
	repo := newMockUserRepo()
	uc := usecase.NewUserUseCase(repo)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateUserRequest{Username: "sergio", Password: "segredo1", Email: "a@example.org"})
	require.NoError(t, err)

	inactive := false
	out, err := uc.Update(ctx, "sergio", dto.UpdateUserRequest{Email: strPtr("b@example.org"), Active: &inactive})
	require.NoError(t, err)
	assert.Equal(t, "b@example.org", out.Email)
	assert.False(t, out.Active)
	assert.False(t, repo.items["sergio"].ReceivesAlerts())

	_, err = uc.Update(ctx, "ninguem", dto.UpdateUserRequest{})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
