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

var _ repository.CreditRecordRepository = (*CreditRecordRepo)(nil)

// CreditRecordRepo implementación del puerto CreditRecordRepository sobre PostgreSQL.
type CreditRecordRepo struct {
	q Querier
}

// NewCreditRecordRepository construye el adaptador (acepta pool o tx).
func NewCreditRecordRepository(q Querier) *CreditRecordRepo {
	return &CreditRecordRepo{q: q}
}

const creditRecordColumns = `
	id, employee_nf, name, department, bond, worked_date, clock_in, clock_out,
	worked, entitlement, deadline, total_hours, daily_hours, days_to_take,
	days_taken, debited, balance, note, created_at, updated_at`

const creditRecordOrder = ` ORDER BY worked_date DESC NULLS LAST, created_at DESC`

// Create persiste un registro ya derivado.
func (r *CreditRecordRepo) Create(ctx context.Context, c *entity.CreditRecord) error {
	query := `INSERT INTO credit_records (` + creditRecordColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.EmployeeNF, c.Name, c.Department, c.Bond, c.WorkedDate, c.ClockIn, c.ClockOut,
		c.Worked, c.Entitlement, c.Deadline, c.TotalHours, c.DailyHours, c.DaysToTake,
		c.DaysTaken, c.Debited, c.Balance, c.Note, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrEmployeeNotFound
		}
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert credit record: %w", err)
	}
	return nil
}

// GetByID obtiene un registro. Devuelve nil, nil si no existe.
func (r *CreditRecordRepo) GetByID(ctx context.Context, id string) (*entity.CreditRecord, error) {
	query := `SELECT ` + creditRecordColumns + ` FROM credit_records WHERE id = $1`
	c, err := scanCreditRecord(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get credit record: %w", err)
	}
	return c, nil
}

// Update reescribe todos los campos editables y derivados del registro.
func (r *CreditRecordRepo) Update(ctx context.Context, c *entity.CreditRecord) error {
	query := `
		UPDATE credit_records SET
			name = $2, department = $3, bond = $4, worked_date = $5, clock_in = $6, clock_out = $7,
			worked = $8, entitlement = $9, deadline = $10, total_hours = $11, daily_hours = $12,
			days_to_take = $13, days_taken = $14, debited = $15, balance = $16, note = $17,
			updated_at = $18
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		c.ID, c.Name, c.Department, c.Bond, c.WorkedDate, c.ClockIn, c.ClockOut,
		c.Worked, c.Entitlement, c.Deadline, c.TotalHours, c.DailyHours,
		c.DaysToTake, c.DaysTaken, c.Debited, c.Balance, c.Note, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update credit record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

// Delete elimina un registro.
func (r *CreditRecordRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM credit_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete credit record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

// List todos los registros, más recientes primero.
func (r *CreditRecordRepo) List(ctx context.Context) ([]*entity.CreditRecord, error) {
	return r.list(ctx, `SELECT `+creditRecordColumns+` FROM credit_records`+creditRecordOrder)
}

// ListByEmployee registros de un servidor, más recientes primero.
func (r *CreditRecordRepo) ListByEmployee(ctx context.Context, nf string) ([]*entity.CreditRecord, error) {
	return r.list(ctx, `SELECT `+creditRecordColumns+` FROM credit_records WHERE employee_nf = $1`+creditRecordOrder, nf)
}

// ListWithDeadline registros con plazo informado (candidatos a aviso).
func (r *CreditRecordRepo) ListWithDeadline(ctx context.Context) ([]*entity.CreditRecord, error) {
	return r.list(ctx, `SELECT `+creditRecordColumns+` FROM credit_records WHERE deadline IS NOT NULL ORDER BY deadline`)
}

func (r *CreditRecordRepo) list(ctx context.Context, query string, args ...any) ([]*entity.CreditRecord, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list credit records: %w", err)
	}
	defer rows.Close()
	var list []*entity.CreditRecord
	for rows.Next() {
		c, err := scanCreditRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan credit record: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func scanCreditRecord(row pgx.Row) (*entity.CreditRecord, error) {
	var c entity.CreditRecord
	err := row.Scan(
		&c.ID, &c.EmployeeNF, &c.Name, &c.Department, &c.Bond, &c.WorkedDate, &c.ClockIn, &c.ClockOut,
		&c.Worked, &c.Entitlement, &c.Deadline, &c.TotalHours, &c.DailyHours, &c.DaysToTake,
		&c.DaysTaken, &c.Debited, &c.Balance, &c.Note, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
