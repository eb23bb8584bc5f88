package entity

import "time"

// AlertLog marca que el lote de avisos de un registro ya se envió en AlertDate.
// Solo se inserta; nunca se actualiza.
type AlertLog struct {
	ID        string
	RecordID  string
	AlertDate time.Time
	SentAt    time.Time
}
