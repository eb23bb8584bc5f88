package entity

import "time"

// CreditRecord es un día trabajado convertido en crédito de horas (banco de horas).
// Las duraciones se guardan como texto "HH:MM"; vacío significa ausente.
type CreditRecord struct {
	ID          string
	EmployeeNF  string
	Name        string // copia del nombre del servidor al momento del registro
	Department  string
	Bond        string // vínculo (efectivo, comisionado, ...)
	WorkedDate  *time.Time
	ClockIn     string
	ClockOut    string
	Worked      string     // calculado: salida - entrada
	Entitlement string     // calculado: 2x Worked
	Deadline    *time.Time // calculado: WorkedDate + 6 meses
	TotalHours  string
	DailyHours  string // jornada diaria, por defecto "08:00"
	DaysToTake  string // cupo de días a gozar (texto libre)
	DaysTaken   string // fechas de las libranzas ya tomadas (texto libre)
	Debited     string // horas descontadas
	Balance     string // Entitlement - Debited, con signo
	Note        string // número de proceso E-Docs, etc.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
