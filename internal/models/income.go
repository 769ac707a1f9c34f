package models

import "time"

type Income struct {
	ID         uint    `gorm:"primaryKey"`
	UserID     uint    `gorm:"not null;index"`
	IncomeType string  `gorm:"not null"`
	Amount     float64 `gorm:"not null"`
	Date       string  `gorm:"not null"`
	Notes      *string
	CreatedAt  time.Time `gorm:"not null"`
}

func (Income) TableName() string {
	return "income"
}
