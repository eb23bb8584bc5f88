package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/banco-horas-api/internal/application/dto"
	"github.com/jhoicas/banco-horas-api/internal/application/usecase"
	"github.com/jhoicas/banco-horas-api/internal/domain"
	"github.com/jhoicas/banco-horas-api/internal/domain/entity"
)

func newCreditUC() (*usecase.CreditUseCase, *mockCreditRepo) {
	employees := newMockEmployeeRepo(&entity.Employee{NF: "123", Name: "Maria", Department: "RH"})
	records := &mockCreditRepo{}
	return usecase.NewCreditUseCase(employees, records), records
}

func TestCreditCreate_DerivaCampos(t *testing.T) {
	uc, records := newCreditUC()

	out, err := uc.Create(context.Background(), dto.CreditRecordRequest{
		EmployeeNF: "123",
		WorkedDate: strPtr("2025-01-31"),
		ClockIn:    strPtr("08:00"),
		ClockOut:   strPtr("12:30"),
		Debited:    strPtr("01:00"),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Maria", out.Name, "nombre copiado del servidor")
	assert.Equal(t, "RH", out.Department)
	assert.Equal(t, "04:30", out.Worked)
	assert.Equal(t, "09:00", out.Entitlement)
	assert.Equal(t, "2025-07-31", out.Deadline)
	assert.Equal(t, "08:00", out.Balance)
	assert.Equal(t, "08:00", out.DailyHours)
	assert.Equal(t, "1.0", out.BalanceDays)
	assert.Len(t, records.items, 1)
}

func TestCreditCreate_ServidorInexistente(t *testing.T) {
	uc, records := newCreditUC()

	_, err := uc.Create(context.Background(), dto.CreditRecordRequest{EmployeeNF: "999"})
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
	assert.Empty(t, records.items)
}

func TestCreditCreate_FechaInvalida(t *testing.T) {
	uc, records := newCreditUC()

	_, err := uc.Create(context.Background(), dto.CreditRecordRequest{EmployeeNF: "123", WorkedDate: strPtr("31/01/2025")})
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
	assert.Empty(t, records.items)
}

func TestCreditUpdate_RecalculaSaldoYPlazo(t *testing.T) {
	uc, _ := newCreditUC()
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreditRecordRequest{
		EmployeeNF: "123",
		WorkedDate: strPtr("2025-03-31"),
		ClockIn:    strPtr("08:00"),
		ClockOut:   strPtr("10:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-09-30", created.Deadline)

	out, err := uc.Update(ctx, created.ID, dto.CreditRecordRequest{
		WorkedDate: strPtr("2025-08-31"),
		Deadline:   strPtr("2030-01-01"),
		Debited:    strPtr("05:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-02-28", out.Deadline, "el plazo enviado se ignora si cambia el día")
	assert.Equal(t, "-01:00", out.Balance)
	assert.Equal(t, "-0.1", out.BalanceDays)

	got, err := uc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "-01:00", got.Balance, "la edición queda persistida")
}

func TestCreditGet_IDInvalido(t *testing.T) {
	uc, _ := newCreditUC()

	_, err := uc.Get(context.Background(), "no-es-uuid")
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestCreditListByEmployee(t *testing.T) {
	uc, _ := newCreditUC()
	ctx := context.Background()
	_, err := uc.Create(ctx, dto.CreditRecordRequest{EmployeeNF: "123", Worked: strPtr("02:00")})
	require.NoError(t, err)

	out, err := uc.ListByEmployee(ctx, "123")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "04:00", out[0].Entitlement, "sin entrada/salida el derecho es 2x lo trabajado")

	_, err = uc.ListByEmployee(ctx, "999")
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}
