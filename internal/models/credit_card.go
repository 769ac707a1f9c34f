package models

import "time"

type CreditCard struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"not null;index"`
	CardName    string    `gorm:"not null"`
	ClosingDate int       `gorm:"not null"`
	DueDate     int       `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
}
