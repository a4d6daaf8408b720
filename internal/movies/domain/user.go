package domain

import "time"

// User is a registered account. Username and Salt never change once the
// record exists unless salt rotation is enabled on password change.
type User struct {
	ID           string
	Username     string
	Salt         string // 32 hex chars
	PasswordHash string // hex SHA-256 of Salt || password
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
