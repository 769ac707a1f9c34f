package services

import (
	"time"

	"github.com/caioaraujo/grana/internal/models"
)

// AddMonthsClamped shifts a calendar day by whole months, keeping the
// day-of-month and clamping it to the target month's last day. Jan 31 + 1
// month lands on Feb 28 (29 in leap years), never Mar 2.
func AddMonthsClamped(day time.Time, months int) time.Time {
	anchor := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
	shifted := anchor.AddDate(0, months, 0)

	dayOfMonth := day.Day()
	if last := lastDayOfMonth(shifted.Year(), shifted.Month()); dayOfMonth > last {
		dayOfMonth = last
	}
	return time.Date(shifted.Year(), shifted.Month(), dayOfMonth, 0, 0, 0, 0, day.Location())
}

func lastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// BuildRecurringChildren materializes months 2..N of a recurring series from
// the persisted parent (month 1 of N). Children copy the parent's category,
// location, amount, notes, and recurring flag; they carry no recurrence count
// of their own, so they are never re-expanded.
func BuildRecurringChildren(parent models.Expense, months int) ([]models.Expense, error) {
	if months <= 1 {
		return nil, nil
	}

	baseDate, err := time.Parse(models.DateLayout, parent.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	parentID := parent.ID
	children := make([]models.Expense, 0, months-1)
	for monthOffset := 1; monthOffset < months; monthOffset++ {
		children = append(children, models.Expense{
			UserID:          parent.UserID,
			Category:        parent.Category,
			Location:        parent.Location,
			Date:            AddMonthsClamped(baseDate, monthOffset).Format(models.DateLayout),
			Amount:          parent.Amount,
			Notes:           parent.Notes,
			IsRecurring:     parent.IsRecurring,
			ParentExpenseID: &parentID,
		})
	}
	return children, nil
}
