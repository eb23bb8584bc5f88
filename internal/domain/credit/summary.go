package credit

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/banco-horas-api/internal/domain/entity"
	"github.com/jhoicas/banco-horas-api/internal/domain/hours"
)

// MinutesPerDay jornada de referencia (8h) para convertir el saldo en días a gozar.
const MinutesPerDay = 480

var minutesPerDay = decimal.NewFromInt(MinutesPerDay)

// Summary totales de un servidor sobre todos sus registros.
type Summary struct {
	EntitlementMinutes int
	DebitedMinutes     int
	BalanceMinutes     int // con signo
	AvailableDays      decimal.Decimal
	Records            int
}

// Negative indica si el servidor debe horas.
func (s Summary) Negative() bool { return s.BalanceMinutes < 0 }

// Entitlement total de horas de derecho en "HH:MM".
func (s Summary) Entitlement() string { return hours.FromMinutes(s.EntitlementMinutes) }

// Debited total de horas descontadas en "HH:MM".
func (s Summary) Debited() string { return hours.FromMinutes(s.DebitedMinutes) }

// Balance magnitud del saldo en "HH:MM", sin signo; el signo lo da Negative.
func (s Summary) Balance() string {
	m := s.BalanceMinutes
	if m < 0 {
		m = -m
	}
	return hours.FromMinutes(m)
}

// Summarize acumula horas de derecho y descontadas por separado y calcula el
// saldo. Los días disponibles solo se informan con saldo positivo.
func Summarize(records []*entity.CreditRecord) Summary {
	s := Summary{Records: len(records), AvailableDays: decimal.Zero}
	for _, r := range records {
		s.EntitlementMinutes += hours.ToMinutes(r.Entitlement)
		s.DebitedMinutes += hours.ToMinutes(r.Debited)
	}
	s.BalanceMinutes = s.EntitlementMinutes - s.DebitedMinutes
	if s.BalanceMinutes > 0 {
		s.AvailableDays = decimal.NewFromInt(int64(s.BalanceMinutes)).Div(minutesPerDay).Round(2)
	}
	return s
}

// Statistics indicadores globales del sistema.
type Statistics struct {
	Employees       int
	Records         int
	AverageWorked   string
	TotalDaysToTake decimal.Decimal
}

// ComputeStatistics calcula la media de horas trabajadas (solo registros con
// horas informadas, división entera) y la suma del cupo de días a gozar,
// ignorando los cupos que no son números.
func ComputeStatistics(employees int, records []*entity.CreditRecord) Statistics {
	st := Statistics{
		Employees:       employees,
		Records:         len(records),
		AverageWorked:   hours.Zero,
		TotalDaysToTake: decimal.Zero,
	}
	var total, n int
	for _, r := range records {
		if !hours.IsBlank(r.Worked) {
			total += hours.ToMinutes(r.Worked)
			n++
		}
		if d, err := decimal.NewFromString(strings.TrimSpace(r.DaysToTake)); err == nil {
			st.TotalDaysToTake = st.TotalDaysToTake.Add(d)
		}
	}
	if n > 0 {
		st.AverageWorked = hours.FromMinutes(total / n)
	}
	st.TotalDaysToTake = st.TotalDaysToTake.Round(2)
	return st
}

// SortByWorkedDate ordena in situ por día trabajado descendente; los registros
// sin día van al final y los empates conservan el orden recibido.
func SortByWorkedDate(records []*entity.CreditRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i].WorkedDate, records[j].WorkedDate
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})
}
