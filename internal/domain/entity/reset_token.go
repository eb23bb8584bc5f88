package entity

import "time"

// ResetToken token de un solo uso emitido por un admin para redefinir la contraseña de un usuario.
type ResetToken struct {
	ID        string
	UserID    string
	Token     string
	ExpiresAt time.Time
	Used      bool
	CreatedBy string // username del admin que lo emitió
	CreatedAt time.Time
}

// Valid indica si el token aún se puede usar en el instante now.
func (t *ResetToken) Valid(now time.Time) bool {
	return !t.Used && now.Before(t.ExpiresAt)
}
