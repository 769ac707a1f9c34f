package services

import (
	"errors"
	"time"

	"github.com/caioaraujo/grana/internal/models"
	"gorm.io/gorm"
)

type GamificationRepository interface {
	FindForUser(userID uint) (models.Gamification, error)
	Create(state *models.Gamification) error
	Save(state *models.Gamification) error
}

type GamificationService struct {
	states GamificationRepository
}

func NewGamificationService(states GamificationRepository) *GamificationService {
	return &GamificationService{states: states}
}

// AdvanceStreak applies one expense entry to the state in place.
// gap is today minus the last entry date, in calendar days:
//   - gap == 1: the streak continues, 1 base point plus a 5 point bonus
//   - gap == 0: another entry the same day, 1 point, streak untouched
//   - anything else, negative gaps included, resets the streak to 1 for
//     1 point; a last entry date in the future is not special-cased
func AdvanceStreak(state *models.Gamification, today time.Time) {
	todayDay := today.Format(models.DateLayout)

	lastDay, err := time.Parse(models.DateLayout, state.LastEntryDate)
	if err != nil {
		state.Points++
		state.StreakDays = 1
		state.LastEntryDate = todayDay
		return
	}

	gap := calendarDaysBetween(lastDay, today)
	switch {
	case gap == 1:
		state.StreakDays++
		state.Points += 6
	case gap == 0:
		state.Points++
	default:
		state.StreakDays = 1
		state.Points++
	}
	state.LastEntryDate = todayDay
}

func calendarDaysBetween(from time.Time, to time.Time) int {
	fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	toDay := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(toDay.Sub(fromDay).Hours() / 24)
}

// RecordExpenseEntry updates the user's single gamification row for an expense
// created today, creating the row on first entry. Two concurrent entries can
// race on the row; the last write wins.
func (service *GamificationService) RecordExpenseEntry(userID uint, today time.Time) error {
	state, err := service.states.FindForUser(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		fresh := models.Gamification{
			UserID:        userID,
			Points:        1,
			StreakDays:    1,
			LastEntryDate: today.Format(models.DateLayout),
		}
		return service.states.Create(&fresh)
	}
	if err != nil {
		return err
	}

	AdvanceStreak(&state, today)
	return service.states.Save(&state)
}
