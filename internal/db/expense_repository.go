package db

import (
	"github.com/caioaraujo/grana/internal/models"
	"gorm.io/gorm"
)

type ExpenseRepository struct {
	database *gorm.DB
}

func NewExpenseRepository(database *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{database: database}
}

// CreateSeries persists the parent expense and any rows derived from it in a
// single transaction, so a recurring series is either stored whole or not at
// all. buildChildren runs after the parent insert, once its id is known.
func (repo *ExpenseRepository) CreateSeries(parent *models.Expense, buildChildren func(parent models.Expense) []models.Expense) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(parent).Error; err != nil {
			return err
		}
		if buildChildren == nil {
			return nil
		}
		children := buildChildren(*parent)
		if len(children) == 0 {
			return nil
		}
		return tx.Create(&children).Error
	})
}

func (repo *ExpenseRepository) ListForUser(userID uint) ([]models.Expense, error) {
	expenses := make([]models.Expense, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

// ListForUserInRange returns the user's expenses with startDate <= date < endDate,
// newest first. Dates are the schema's YYYY-MM-DD strings, so lexicographic
// comparison is chronological.
func (repo *ExpenseRepository) ListForUserInRange(userID uint, startDate string, endDate string) ([]models.Expense, error) {
	expenses := make([]models.Expense, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, startDate, endDate).
		Order("date DESC, id DESC").
		Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

func (repo *ExpenseRepository) FindOwned(expenseID uint, userID uint) (models.Expense, error) {
	var expense models.Expense
	if err := repo.database.
		Where("id = ? AND user_id = ?", expenseID, userID).
		First(&expense).Error; err != nil {
		return models.Expense{}, err
	}
	return expense, nil
}

func (repo *ExpenseRepository) Delete(expenseID uint) error {
	return repo.database.Delete(&models.Expense{}, expenseID).Error
}
