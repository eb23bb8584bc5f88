package dto

import "time"

// CreditRecordRequest entrada de alta y edición de un día trabajado.
// En la edición un campo ausente (null) no se modifica; las fechas van en
// formato AAAA-MM-DD y las horas en HH:MM.
type CreditRecordRequest struct {
	EmployeeNF  string  `json:"employee_nf,omitempty"` // solo en el alta
	Name        *string `json:"name"`
	Department  *string `json:"department"`
	Bond        *string `json:"bond"`
	WorkedDate  *string `json:"worked_date"`
	ClockIn     *string `json:"clock_in"`
	ClockOut    *string `json:"clock_out"`
	Worked      *string `json:"worked"`
	Entitlement *string `json:"entitlement"`
	Deadline    *string `json:"deadline"`
	TotalHours  *string `json:"total_hours"`
	DailyHours  *string `json:"daily_hours"`
	DaysToTake  *string `json:"days_to_take"`
	DaysTaken   *string `json:"days_taken"`
	Debited     *string `json:"debited"`
	Note        *string `json:"note"`
}

// CreditRecordResponse salida de un registro con sus campos derivados.
type CreditRecordResponse struct {
	ID          string    `json:"id"`
	EmployeeNF  string    `json:"employee_nf"`
	Name        string    `json:"name"`
	Department  string    `json:"department"`
	Bond        string    `json:"bond"`
	WorkedDate  string    `json:"worked_date"`
	ClockIn     string    `json:"clock_in"`
	ClockOut    string    `json:"clock_out"`
	Worked      string    `json:"worked"`
	Entitlement string    `json:"entitlement"`
	Deadline    string    `json:"deadline"`
	TotalHours  string    `json:"total_hours"`
	DailyHours  string    `json:"daily_hours"`
	DaysToTake  string    `json:"days_to_take"`
	DaysTaken   string    `json:"days_taken"`
	Debited     string    `json:"debited"`
	Balance     string    `json:"balance"`
	BalanceDays string    `json:"balance_days"`
	Note        string    `json:"note"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
