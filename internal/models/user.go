package models

import "time"

// UserTypePrimary is the type tag embedded in tokens issued to end users.
const UserTypePrimary = "primary"

type User struct {
	ID            uint   `gorm:"primaryKey"`
	Username      string `gorm:"uniqueIndex;not null"`
	PasswordHash  string `gorm:"not null"`
	FullName      *string
	CPF           *string `gorm:"column:cpf"`
	Address       *string
	FamilyID      *string
	MonthlyIncome *float64
	IncomeDate    *int
	Notes         *string
	CreatedAt     time.Time `gorm:"not null"`
}

// HasProfile reports whether the account has filled in its financial profile.
func (user User) HasProfile() bool {
	return user.FullName != nil && *user.FullName != ""
}
