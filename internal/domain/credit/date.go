package credit

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/banco-horas-api/internal/domain"
)

// DateLayout formato ISO de las fechas de calendario (día trabajado, plazo).
const DateLayout = "2006-01-02"

// DeadlineMonths meses de vigencia de un crédito de horas.
const DeadlineMonths = 6

// ParseDate interpreta una fecha "AAAA-MM-DD" de forma estricta. A diferencia de
// las duraciones, una fecha mal formada es un error de validación: el plazo y los
// ordenamientos dependen de ella.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidDate, s)
	}
	return t, nil
}

// FormatDate devuelve la fecha en formato ISO o "" si es nil.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}

// AddMonths suma n meses de calendario. Si el día no existe en el mes destino se
// usa el último día de ese mes (31/08 + 6 meses = 28/02 o 29/02).
//
// time.AddDate no sirve aquí: normaliza el desbordamiento hacia el mes siguiente
// (31/08 + 6 meses = 03/03).
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	total := int(m) - 1 + n
	y += total / 12
	month := total % 12
	if month < 0 {
		month += 12
		y--
	}
	target := time.Month(month + 1)
	if last := daysIn(y, target, t.Location()); d > last {
		d = last
	}
	return time.Date(y, target, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// Deadline plazo máximo para gozar las horas de un día trabajado.
func Deadline(worked time.Time) time.Time {
	return AddMonths(worked, DeadlineMonths)
}

// DaysUntil días de calendario entre today y deadline (negativo si ya venció).
func DaysUntil(deadline, today time.Time) int {
	d := dateOnly(deadline)
	t := dateOnly(today)
	return int(d.Sub(t).Hours() / 24)
}

func daysIn(y int, m time.Month, loc *time.Location) int {
	return time.Date(y, m+1, 0, 0, 0, 0, 0, loc).Day()
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
