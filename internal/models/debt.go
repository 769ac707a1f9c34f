package models

import "time"

// DebtStatusOpen is the default status for a new debt. The column itself is
// free-form: the data layer enforces no enumeration.
const DebtStatusOpen = "open"

type Debt struct {
	ID           uint      `gorm:"primaryKey"`
	UserID       uint      `gorm:"not null;index"`
	Description  string    `gorm:"not null"`
	TotalAmount  float64   `gorm:"not null"`
	Installments int       `gorm:"not null"`
	InterestRate float64   `gorm:"not null;default:0"`
	Status       string    `gorm:"not null;default:open"`
	CreatedAt    time.Time `gorm:"not null"`
}
