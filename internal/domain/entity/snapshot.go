package entity

import "time"

// Snapshot copia consistente de toda la base tomada en TakenAt: servidores,
// registros, cuentas, tokens de redefinición y registro de avisos.
type Snapshot struct {
	TakenAt     time.Time
	Employees   []*Employee
	Records     []*CreditRecord
	Users       []*User
	ResetTokens []*ResetToken
	AlertLogs   []*AlertLog
}
