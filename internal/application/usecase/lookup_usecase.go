package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/banco-horas-api/internal/application/dto"
	"github.com/jhoicas/banco-horas-api/internal/domain"
	"github.com/jhoicas/banco-horas-api/internal/domain/credit"
	"github.com/jhoicas/banco-horas-api/internal/domain/entity"
	"github.com/jhoicas/banco-horas-api/internal/domain/repository"
)

// Statement datos de un extracto del banco de horas listo para imprimir.
type Statement struct {
	Employee    *entity.Employee
	Summary     credit.Summary
	Records     []*entity.CreditRecord
	GeneratedAt time.Time
}

// StatementRenderer puerto de salida: genera el documento imprimible del extracto.
type StatementRenderer interface {
	RenderStatement(ctx context.Context, st *Statement) ([]byte, error)
}

// LookupUseCase consulta por NF y estadísticas globales. Solo lectura: repetir
// una consulta sin cambios en los datos devuelve el mismo resultado.
type LookupUseCase struct {
	employees repository.EmployeeRepository
	records   repository.CreditRecordRepository
	renderer  StatementRenderer
	now       func() time.Time
}

// NewLookupUseCase construye el caso de uso. renderer puede ser nil si no se exponen PDFs.
func NewLookupUseCase(
	employees repository.EmployeeRepository,
	records repository.CreditRecordRepository,
	renderer StatementRenderer,
) *LookupUseCase {
	return &LookupUseCase{employees: employees, records: records, renderer: renderer, now: time.Now}
}

// Lookup devuelve el servidor, sus totales y sus registros más recientes primero.
func (uc *LookupUseCase) Lookup(ctx context.Context, nf string) (*dto.LookupResponse, error) {
	st, err := uc.statement(ctx, nf)
	if err != nil {
		return nil, err
	}
	return &dto.LookupResponse{
		Employee: *toEmployeeResponse(st.Employee),
		Summary:  ToSummaryDTO(st.Summary),
		Records:  toCreditRecordResponses(st.Records),
	}, nil
}

// Statistics indicadores globales del sistema.
func (uc *LookupUseCase) Statistics(ctx context.Context) (*dto.StatisticsResponse, error) {
	n, err := uc.employees.Count(ctx)
	if err != nil {
		return nil, err
	}
	records, err := uc.records.List(ctx)
	if err != nil {
		return nil, err
	}
	s := credit.ComputeStatistics(n, records)
	return &dto.StatisticsResponse{
		Employees:       s.Employees,
		Records:         s.Records,
		AverageWorked:   s.AverageWorked,
		TotalDaysToTake: s.TotalDaysToTake,
	}, nil
}

// StatementPDF genera el extracto imprimible de la consulta por NF.
func (uc *LookupUseCase) StatementPDF(ctx context.Context, nf string) ([]byte, error) {
	if uc.renderer == nil {
		return nil, domain.ErrNotFound
	}
	st, err := uc.statement(ctx, nf)
	if err != nil {
		return nil, err
	}
	return uc.renderer.RenderStatement(ctx, st)
}

func (uc *LookupUseCase) statement(ctx context.Context, nf string) (*Statement, error) {
	nf = strings.TrimSpace(nf)
	emp, err := uc.employees.GetByNF(ctx, nf)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	records, err := uc.records.ListByEmployee(ctx, nf)
	if err != nil {
		return nil, err
	}
	credit.SortByWorkedDate(records)
	return &Statement{
		Employee:    emp,
		Summary:     credit.Summarize(records),
		Records:     records,
		GeneratedAt: uc.now(),
	}, nil
}

// ToSummaryDTO convierte los totales de dominio al DTO de salida.
func ToSummaryDTO(s credit.Summary) dto.SummaryDTO {
	return dto.SummaryDTO{
		Entitlement:   s.Entitlement(),
		Debited:       s.Debited(),
		Balance:       s.Balance(),
		Negative:      s.Negative(),
		AvailableDays: s.AvailableDays,
		Records:       s.Records,
	}
}
