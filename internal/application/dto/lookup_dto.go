package dto

import "github.com/shopspring/decimal"

// SummaryDTO totales del banco de horas de un servidor.
type SummaryDTO struct {
	Entitlement   string          `json:"entitlement"`
	Debited       string          `json:"debited"`
	Balance       string          `json:"balance"` // magnitud sin signo
	Negative      bool            `json:"negative"`
	AvailableDays decimal.Decimal `json:"available_days"`
	Records       int             `json:"records"`
}

// LookupResponse consulta por NF: servidor, totales y registros (más recientes primero).
type LookupResponse struct {
	Employee EmployeeResponse       `json:"employee"`
	Summary  SummaryDTO             `json:"summary"`
	Records  []CreditRecordResponse `json:"records"`
}

// StatisticsResponse indicadores globales.
type StatisticsResponse struct {
	Employees       int             `json:"employees"`
	Records         int             `json:"records"`
	AverageWorked   string          `json:"average_worked"`
	TotalDaysToTake decimal.Decimal `json:"total_days_to_take"`
}
