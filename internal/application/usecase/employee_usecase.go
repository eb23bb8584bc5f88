package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/banco-horas-api/internal/application/dto"
	"github.com/jhoicas/banco-horas-api/internal/domain"
	"github.com/jhoicas/banco-horas-api/internal/domain/entity"
	"github.com/jhoicas/banco-horas-api/internal/domain/repository"
)

// EmployeeUseCase casos de uso CRUD para servidores.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
	now  func() time.Time
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, now: time.Now}
}

// Create registra un servidor. NF, nombre y setor son obligatorios.
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	nf := strings.TrimSpace(in.NF)
	name := strings.TrimSpace(in.Name)
	dept := strings.TrimSpace(in.Department)
	if nf == "" || name == "" || dept == "" {
		return nil, fmt.Errorf("%w: nf, name y department son obligatorios", domain.ErrInvalidInput)
	}
	existing, err := uc.repo.GetByNF(ctx, nf)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmployeeExists
	}
	now := uc.now()
	emp := &entity.Employee{NF: nf, Name: name, Department: dept, CreatedAt: now, UpdatedAt: now}
	if err := uc.repo.Create(ctx, emp); err != nil {
		return nil, err
	}
	return toEmployeeResponse(emp), nil
}

// Get obtiene un servidor por NF.
func (uc *EmployeeUseCase) Get(ctx context.Context, nf string) (*dto.EmployeeResponse, error) {
	emp, err := uc.find(ctx, nf)
	if err != nil {
		return nil, err
	}
	return toEmployeeResponse(emp), nil
}

// Update cambia nombre y/o setor. Los registros ya existentes conservan la copia antigua.
func (uc *EmployeeUseCase) Update(ctx context.Context, nf string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	emp, err := uc.find(ctx, nf)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		if emp.Name = strings.TrimSpace(*in.Name); emp.Name == "" {
			return nil, fmt.Errorf("%w: name no puede estar vacío", domain.ErrInvalidInput)
		}
	}
	if in.Department != nil {
		if emp.Department = strings.TrimSpace(*in.Department); emp.Department == "" {
			return nil, fmt.Errorf("%w: department no puede estar vacío", domain.ErrInvalidInput)
		}
	}
	emp.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, emp); err != nil {
		return nil, err
	}
	return toEmployeeResponse(emp), nil
}

// List devuelve los servidores ordenados por nombre según el orden alfabético
// del portugués (acentos no desplazan el nombre al final de la lista).
func (uc *EmployeeUseCase) List(ctx context.Context) ([]dto.EmployeeResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	SortEmployeesByName(list)
	out := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, *toEmployeeResponse(e))
	}
	return out, nil
}

// Delete elimina el servidor y, en cascada, sus registros.
func (uc *EmployeeUseCase) Delete(ctx context.Context, nf string) error {
	if _, err := uc.find(ctx, nf); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, nf)
}

func (uc *EmployeeUseCase) find(ctx context.Context, nf string) (*entity.Employee, error) {
	emp, err := uc.repo.GetByNF(ctx, strings.TrimSpace(nf))
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	return emp, nil
}

// SortEmployeesByName ordena in situ por nombre con collation pt-BR (sin distinguir mayúsculas).
func SortEmployeesByName(list []*entity.Employee) {
	c := collate.New(language.BrazilianPortuguese, collate.IgnoreCase)
	sort.SliceStable(list, func(i, j int) bool {
		return c.CompareString(list[i].Name, list[j].Name) < 0
	})
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	if e == nil {
		return nil
	}
	return &dto.EmployeeResponse{
		NF:         e.NF,
		Name:       e.Name,
		Department: e.Department,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}
