package db

import (
	"github.com/caioaraujo/grana/internal/models"
	"gorm.io/gorm"
)

type GamificationRepository struct {
	database *gorm.DB
}

func NewGamificationRepository(database *gorm.DB) *GamificationRepository {
	return &GamificationRepository{database: database}
}

// FindForUser returns gorm.ErrRecordNotFound when the user has no row yet.
func (repo *GamificationRepository) FindForUser(userID uint) (models.Gamification, error) {
	var state models.Gamification
	if err := repo.database.Where("user_id = ?", userID).First(&state).Error; err != nil {
		return models.Gamification{}, err
	}
	return state, nil
}

func (repo *GamificationRepository) Create(state *models.Gamification) error {
	return repo.database.Create(state).Error
}

func (repo *GamificationRepository) Save(state *models.Gamification) error {
	return repo.database.Save(state).Error
}
