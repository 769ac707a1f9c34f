package models

import "time"

// DateLayout is the calendar-day format used by every dated row in the schema.
const DateLayout = "2006-01-02"

// Expense is a single dated expense row. A recurring expense is stored as a
// parent row carrying RecurrenceMonths plus one child row per following month;
// children point back through ParentExpenseID. The field is deliberately not a
// foreign key: deleting the parent leaves the children in place.
type Expense struct {
	ID               uint   `gorm:"primaryKey"`
	UserID           uint   `gorm:"not null;index"`
	Category         string `gorm:"not null"`
	Location         *string
	Date             string  `gorm:"not null;index"`
	Amount           float64 `gorm:"not null"`
	Notes            *string
	IsRecurring      bool `gorm:"not null;default:false"`
	RecurrenceMonths *int
	ParentExpenseID  *uint
	CreatedAt        time.Time `gorm:"not null"`
}
