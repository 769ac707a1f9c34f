package db

import (
	"github.com/caioaraujo/grana/internal/models"
	"gorm.io/gorm"
)

type IncomeRepository struct {
	database *gorm.DB
}

func NewIncomeRepository(database *gorm.DB) *IncomeRepository {
	return &IncomeRepository{database: database}
}

func (repo *IncomeRepository) Create(income *models.Income) error {
	return repo.database.Create(income).Error
}

func (repo *IncomeRepository) ListForUser(userID uint) ([]models.Income, error) {
	entries := make([]models.Income, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("id").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
