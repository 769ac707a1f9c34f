package db

import (
	"github.com/caioaraujo/grana/internal/models"
	"gorm.io/gorm"
)

type DebtRepository struct {
	database *gorm.DB
}

func NewDebtRepository(database *gorm.DB) *DebtRepository {
	return &DebtRepository{database: database}
}

func (repo *DebtRepository) Create(debt *models.Debt) error {
	return repo.database.Create(debt).Error
}

func (repo *DebtRepository) ListForUser(userID uint) ([]models.Debt, error) {
	debts := make([]models.Debt, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("id").Find(&debts).Error; err != nil {
		return nil, err
	}
	return debts, nil
}
