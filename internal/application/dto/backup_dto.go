package dto

import "time"

// BackupResponse copia de seguridad disponible.
type BackupResponse struct {
	Name      string    `json:"name"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
	Employees int       `json:"employees,omitempty"`
	Records   int       `json:"records,omitempty"`
	Users     int       `json:"users,omitempty"`
}
