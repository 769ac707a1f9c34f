package db

import (
	"github.com/caioaraujo/grana/internal/models"
	"gorm.io/gorm"
)

type CreditCardRepository struct {
	database *gorm.DB
}

func NewCreditCardRepository(database *gorm.DB) *CreditCardRepository {
	return &CreditCardRepository{database: database}
}

func (repo *CreditCardRepository) Create(card *models.CreditCard) error {
	return repo.database.Create(card).Error
}

func (repo *CreditCardRepository) ListForUser(userID uint) ([]models.CreditCard, error) {
	cards := make([]models.CreditCard, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("id").Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}
