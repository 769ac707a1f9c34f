package models

import "time"

const (
	RoleMaster = "master"
	RoleAdmin  = "admin"
)

// MasterUser is an operator account. It lives in its own identity space and
// has no relation to primary users.
type MasterUser struct {
	ID           uint      `gorm:"primaryKey"`
	Username     string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"not null;default:admin"`
	CreatedAt    time.Time `gorm:"not null"`
}
