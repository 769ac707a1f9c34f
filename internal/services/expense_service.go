package services

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/caioaraujo/grana/internal/models"
	"gorm.io/gorm"
)

type ExpenseRepository interface {
	CreateSeries(parent *models.Expense, buildChildren func(parent models.Expense) []models.Expense) error
	ListForUser(userID uint) ([]models.Expense, error)
	ListForUserInRange(userID uint, startDate string, endDate string) ([]models.Expense, error)
	FindOwned(expenseID uint, userID uint) (models.Expense, error)
	Delete(expenseID uint) error
}

type AuditRecorder interface {
	Create(entry *models.AuditLog) error
}

type ExpenseService struct {
	expenses     ExpenseRepository
	auditLog     AuditRecorder
	gamification *GamificationService
}

func NewExpenseService(expenses ExpenseRepository, auditLog AuditRecorder, gamification *GamificationService) *ExpenseService {
	return &ExpenseService{
		expenses:     expenses,
		auditLog:     auditLog,
		gamification: gamification,
	}
}

type CreateExpenseInput struct {
	Category         string
	Location         *string
	Date             string
	Amount           float64
	Notes            *string
	IsRecurring      bool
	RecurrenceMonths *int
}

// Create persists the expense and, for a recurring one, its whole series in a
// single transaction, then writes the audit entry and advances the user's
// gamification state. Only expense creation feeds gamification.
func (service *ExpenseService) Create(userID uint, input CreateExpenseInput, now time.Time) (models.Expense, error) {
	if _, err := time.Parse(models.DateLayout, input.Date); err != nil {
		return models.Expense{}, ErrInvalidDate
	}

	parent := models.Expense{
		UserID:           userID,
		Category:         input.Category,
		Location:         input.Location,
		Date:             input.Date,
		Amount:           input.Amount,
		Notes:            input.Notes,
		IsRecurring:      input.IsRecurring,
		RecurrenceMonths: input.RecurrenceMonths,
	}

	var buildChildren func(parent models.Expense) []models.Expense
	if input.IsRecurring && input.RecurrenceMonths != nil && *input.RecurrenceMonths > 0 {
		months := *input.RecurrenceMonths
		buildChildren = func(persisted models.Expense) []models.Expense {
			children, err := BuildRecurringChildren(persisted, months)
			if err != nil {
				// Date already validated above.
				return nil
			}
			return children
		}
	}

	if err := service.expenses.CreateSeries(&parent, buildChildren); err != nil {
		return models.Expense{}, err
	}

	audit := models.AuditLog{
		UserID:    userID,
		Action:    models.AuditActionAddExpense,
		ItemType:  "expense",
		ItemID:    strconv.FormatUint(uint64(parent.ID), 10),
		Details:   fmt.Sprintf("Added expense: %s - R$ %.2f", parent.Category, parent.Amount),
		Timestamp: now,
	}
	if err := service.auditLog.Create(&audit); err != nil {
		return models.Expense{}, err
	}

	if err := service.gamification.RecordExpenseEntry(userID, now); err != nil {
		return models.Expense{}, err
	}

	return parent, nil
}

// List returns the user's expenses, newest first. When both month (1..12) and
// year are positive the result is limited to that calendar month.
func (service *ExpenseService) List(userID uint, month int, year int) ([]models.Expense, error) {
	if month > 0 && year > 0 {
		startDate := fmt.Sprintf("%04d-%02d-01", year, month)
		endDate := fmt.Sprintf("%04d-01-01", year+1)
		if month < 12 {
			endDate = fmt.Sprintf("%04d-%02d-01", year, month+1)
		}
		return service.expenses.ListForUserInRange(userID, startDate, endDate)
	}
	return service.expenses.ListForUser(userID)
}

// Delete removes one of the caller's own expenses. Children of a recurring
// parent are left in place; their parent reference simply goes stale.
func (service *ExpenseService) Delete(expenseID uint, userID uint, now time.Time) error {
	if _, err := service.expenses.FindOwned(expenseID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := service.expenses.Delete(expenseID); err != nil {
		return err
	}

	audit := models.AuditLog{
		UserID:    userID,
		Action:    models.AuditActionDeleteExpense,
		ItemType:  "expense",
		ItemID:    strconv.FormatUint(uint64(expenseID), 10),
		Details:   fmt.Sprintf("Deleted expense: %d", expenseID),
		Timestamp: now,
	}
	return service.auditLog.Create(&audit)
}
