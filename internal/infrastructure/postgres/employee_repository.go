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

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador (acepta pool o tx).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

const employeeColumns = `nf, name, department, created_at, updated_at`

// Create persiste un nuevo servidor.
func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	query := `
		INSERT INTO employees (nf, name, department, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, e.NF, e.Name, e.Department, e.CreatedAt, e.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmployeeExists
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByNF obtiene un servidor por NF. Devuelve nil, nil si no existe.
func (r *EmployeeRepo) GetByNF(ctx context.Context, nf string) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE nf = $1`
	var e entity.Employee
	err := r.q.QueryRow(ctx, query, nf).Scan(&e.NF, &e.Name, &e.Department, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return &e, nil
}

// Update actualiza nombre y setor.
func (r *EmployeeRepo) Update(ctx context.Context, e *entity.Employee) error {
	query := `UPDATE employees SET name = $2, department = $3, updated_at = $4 WHERE nf = $1`
	tag, err := r.q.Exec(ctx, query, e.NF, e.Name, e.Department, e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

// List devuelve todos los servidores ordenados por nombre.
func (r *EmployeeRepo) List(ctx context.Context) ([]*entity.Employee, error) {
	rows, err := r.q.Query(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(&e.NF, &e.Name, &e.Department, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Count número de servidores registrados.
func (r *EmployeeRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count employees: %w", err)
	}
	return n, nil
}

// Delete elimina el servidor; sus registros caen por ON DELETE CASCADE.
func (r *EmployeeRepo) Delete(ctx context.Context, nf string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM employees WHERE nf = $1`, nf)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}
