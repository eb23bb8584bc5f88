package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User representa una cuenta del sistema. Las cuentas activas con rol user y
// email reciben los avisos de vencimiento.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, user
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ReceivesAlerts indica si la cuenta forma parte de la lista de distribución de avisos.
func (u *User) ReceivesAlerts() bool {
	return u.Active && u.Role == RoleUser && u.Email != ""
}
