package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/banco-horas-api/internal/application/dto"
	"github.com/jhoicas/banco-horas-api/internal/domain"
	"github.com/jhoicas/banco-horas-api/internal/domain/credit"
	"github.com/jhoicas/banco-horas-api/internal/domain/entity"
	"github.com/jhoicas/banco-horas-api/internal/domain/hours"
	"github.com/jhoicas/banco-horas-api/internal/domain/repository"
)

// CreditUseCase alta, edición, baja y listados de días trabajados.
// Toda mutación pasa por credit.New o credit.Apply: los campos derivados nunca
// se escriben sin recalcular.
type CreditUseCase struct {
	employees repository.EmployeeRepository
	records   repository.CreditRecordRepository
	now       func() time.Time
}

// NewCreditUseCase construye el caso de uso.
func NewCreditUseCase(employees repository.EmployeeRepository, records repository.CreditRecordRepository) *CreditUseCase {
	return &CreditUseCase{employees: employees, records: records, now: time.Now}
}

// Create registra un día trabajado del servidor in.EmployeeNF.
func (uc *CreditUseCase) Create(ctx context.Context, in dto.CreditRecordRequest) (*dto.CreditRecordResponse, error) {
	nf := strings.TrimSpace(in.EmployeeNF)
	if nf == "" {
		return nil, domain.ErrInvalidInput
	}
	emp, err := uc.employees.GetByNF(ctx, nf)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	rec, err := credit.New(uuid.New().String(), emp, toEdit(in), uc.now())
	if err != nil {
		return nil, err
	}
	if err := uc.records.Create(ctx, rec); err != nil {
		return nil, err
	}
	return ToCreditRecordResponse(rec), nil
}

// Get obtiene un registro por ID.
func (uc *CreditUseCase) Get(ctx context.Context, id string) (*dto.CreditRecordResponse, error) {
	rec, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToCreditRecordResponse(rec), nil
}

// Update aplica una edición parcial. El servidor del registro no cambia.
func (uc *CreditUseCase) Update(ctx context.Context, id string, in dto.CreditRecordRequest) (*dto.CreditRecordResponse, error) {
	rec, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := credit.Apply(rec, toEdit(in), uc.now()); err != nil {
		return nil, err
	}
	if err := uc.records.Update(ctx, rec); err != nil {
		return nil, err
	}
	return ToCreditRecordResponse(rec), nil
}

// Delete elimina un registro.
func (uc *CreditUseCase) Delete(ctx context.Context, id string) error {
	return uc.records.Delete(ctx, id)
}

// List todos los registros, más recientes primero.
func (uc *CreditUseCase) List(ctx context.Context) ([]dto.CreditRecordResponse, error) {
	list, err := uc.records.List(ctx)
	if err != nil {
		return nil, err
	}
	return toCreditRecordResponses(list), nil
}

// ListByEmployee registros de un servidor existente.
func (uc *CreditUseCase) ListByEmployee(ctx context.Context, nf string) ([]dto.CreditRecordResponse, error) {
	emp, err := uc.employees.GetByNF(ctx, nf)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	list, err := uc.records.ListByEmployee(ctx, nf)
	if err != nil {
		return nil, err
	}
	return toCreditRecordResponses(list), nil
}

func (uc *CreditUseCase) find(ctx context.Context, id string) (*entity.CreditRecord, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrRecordNotFound
	}
	rec, err := uc.records.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrRecordNotFound
	}
	return rec, nil
}

func toEdit(in dto.CreditRecordRequest) credit.Edit {
	return credit.Edit{
		Name:        in.Name,
		Department:  in.Department,
		Bond:        in.Bond,
		WorkedDate:  in.WorkedDate,
		ClockIn:     in.ClockIn,
		ClockOut:    in.ClockOut,
		Worked:      in.Worked,
		Entitlement: in.Entitlement,
		Deadline:    in.Deadline,
		TotalHours:  in.TotalHours,
		DailyHours:  in.DailyHours,
		DaysToTake:  in.DaysToTake,
		DaysTaken:   in.DaysTaken,
		Debited:     in.Debited,
		Note:        in.Note,
	}
}

// ToCreditRecordResponse convierte el registro a DTO con el saldo también en días de su jornada.
func ToCreditRecordResponse(r *entity.CreditRecord) *dto.CreditRecordResponse {
	if r == nil {
		return nil
	}
	return &dto.CreditRecordResponse{
		ID:          r.ID,
		EmployeeNF:  r.EmployeeNF,
		Name:        r.Name,
		Department:  r.Department,
		Bond:        r.Bond,
		WorkedDate:  credit.FormatDate(r.WorkedDate),
		ClockIn:     r.ClockIn,
		ClockOut:    r.ClockOut,
		Worked:      r.Worked,
		Entitlement: r.Entitlement,
		Deadline:    credit.FormatDate(r.Deadline),
		TotalHours:  r.TotalHours,
		DailyHours:  r.DailyHours,
		DaysToTake:  r.DaysToTake,
		DaysTaken:   r.DaysTaken,
		Debited:     r.Debited,
		Balance:     r.Balance,
		BalanceDays: hours.ToDays(r.Balance, credit.HoursPerDay(r)),
		Note:        r.Note,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func toCreditRecordResponses(list []*entity.CreditRecord) []dto.CreditRecordResponse {
	out := make([]dto.CreditRecordResponse, 0, len(list))
	for _, r := range list {
		out = append(out, *ToCreditRecordResponse(r))
	}
	return out
}
