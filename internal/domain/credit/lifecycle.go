// Package credit contiene las reglas del banco de horas: derivación de un
// registro (horas trabajadas, horas de derecho, plazo y saldo), la política de
// edición y los totales por servidor y globales.
package credit

import (
	"strings"
	"time"

	"github.com/jhoicas/banco-horas-api/internal/domain/entity"
	"github.com/jhoicas/banco-horas-api/internal/domain/hours"
)

// DefaultDailyHours jornada diaria aplicada al crear un registro sin jornada.
const DefaultDailyHours = "08:00"

// Edit describe un cambio parcial de un registro. Un puntero nil significa que
// el campo no forma parte de la edición.
type Edit struct {
	Name        *string
	Department  *string
	Bond        *string
	WorkedDate  *string
	ClockIn     *string
	ClockOut    *string
	Worked      *string
	Entitlement *string
	Deadline    *string
	TotalHours  *string
	DailyHours  *string
	DaysToTake  *string
	DaysTaken   *string
	Debited     *string
	Note        *string
}

// New construye un registro nuevo para el servidor aplicando la edición sobre un
// registro vacío. Nombre y setor se copian del servidor si no vienen en la edición.
// Solo en el alta, sin reloj y con horas trabajadas, las horas de derecho en
// blanco se completan con 2x lo trabajado.
func New(id string, emp *entity.Employee, e Edit, now time.Time) (*entity.CreditRecord, error) {
	r := &entity.CreditRecord{
		ID:         id,
		EmployeeNF: emp.NF,
		Name:       emp.Name,
		Department: emp.Department,
		DailyHours: DefaultDailyHours,
		CreatedAt:  now,
	}
	// una jornada en blanco no pisa la jornada por defecto
	if e.DailyHours != nil && hours.IsBlank(*e.DailyHours) {
		e.DailyHours = nil
	}
	if err := apply(r, e, now, true); err != nil {
		return nil, err
	}
	return r, nil
}

// Apply aplica la edición y vuelve a derivar el registro.
//
// Política:
//   - si la edición trae el día trabajado, el plazo se recalcula siempre y el plazo
//     enviado se ignora; el plazo manual solo vale cuando el día no cambia.
//   - si tras la edición hay entrada y salida, horas trabajadas y de derecho se
//     recalculan y pisan lo enviado; si falta alguna, los valores enviados se
//     aceptan tal cual (carga manual de datos históricos).
//   - el saldo se recalcula siempre.
//
// Las fechas se validan antes de tocar el registro: un error deja r intacto.
func Apply(r *entity.CreditRecord, e Edit, now time.Time) error {
	return apply(r, e, now, false)
}

func apply(r *entity.CreditRecord, e Edit, now time.Time, creating bool) error {
	workedDate, err := parseOptionalDate(e.WorkedDate)
	if err != nil {
		return err
	}
	var deadline *time.Time
	if e.WorkedDate == nil {
		if deadline, err = parseOptionalDate(e.Deadline); err != nil {
			return err
		}
	}

	set(&r.Name, e.Name)
	set(&r.Department, e.Department)
	set(&r.Bond, e.Bond)
	set(&r.ClockIn, e.ClockIn)
	set(&r.ClockOut, e.ClockOut)
	set(&r.Worked, e.Worked)
	set(&r.Entitlement, e.Entitlement)
	set(&r.TotalHours, e.TotalHours)
	set(&r.DailyHours, e.DailyHours)
	set(&r.DaysToTake, e.DaysToTake)
	set(&r.DaysTaken, e.DaysTaken)
	set(&r.Debited, e.Debited)
	set(&r.Note, e.Note)

	switch {
	case e.WorkedDate != nil:
		r.WorkedDate = workedDate
		r.Deadline = nil
	case e.Deadline != nil:
		r.Deadline = deadline
	}

	derive(r, creating)
	r.UpdatedAt = now
	return nil
}

// Derive recalcula los campos derivados a partir de los valores actuales del
// registro. Es idempotente y se aplica en cada mutación.
func Derive(r *entity.CreditRecord) {
	derive(r, false)
}

func derive(r *entity.CreditRecord, creating bool) {
	// con entrada y salida las horas no se pueden fijar a mano
	if HasClockTimes(r) {
		r.Worked = hours.Between(r.ClockIn, r.ClockOut)
		r.Entitlement = hours.Double(r.Worked)
	} else if creating && hours.IsBlank(r.Entitlement) && !hours.IsBlank(r.Worked) {
		r.Entitlement = hours.Double(r.Worked)
	}

	if r.Deadline == nil && r.WorkedDate != nil {
		d := Deadline(*r.WorkedDate)
		r.Deadline = &d
	}

	r.Balance = hours.Difference(r.Entitlement, r.Debited)
}

// HasClockTimes indica si el registro tiene entrada y salida informadas.
func HasClockTimes(r *entity.CreditRecord) bool {
	return !hours.IsBlank(r.ClockIn) && !hours.IsBlank(r.ClockOut)
}

// HoursPerDay jornada del registro en horas enteras (8 si no se puede interpretar).
func HoursPerDay(r *entity.CreditRecord) int {
	if h := hours.ToMinutes(r.DailyHours) / 60; h > 0 {
		return h
	}
	return hours.DefaultHoursPerDay
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func set(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}
