package models

// Gamification tracks the points counter and consecutive-day streak for a
// single user. At most one row per user exists.
type Gamification struct {
	ID            uint `gorm:"primaryKey"`
	UserID        uint `gorm:"uniqueIndex;not null"`
	Points        int  `gorm:"not null;default:0"`
	StreakDays    int  `gorm:"not null;default:0"`
	LastEntryDate string
}

func (Gamification) TableName() string {
	return "gamification"
}
