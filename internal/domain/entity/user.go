package entity

import "time"

// User usuario del sistema. Los usuarios se siembran por migración o
// herramienta administrativa; no hay autorregistro.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Name         string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
