package db

import (
	"github.com/caioaraujo/grana/internal/models"
	"gorm.io/gorm"
)

type MasterUserRepository struct {
	database *gorm.DB
}

func NewMasterUserRepository(database *gorm.DB) *MasterUserRepository {
	return &MasterUserRepository{database: database}
}

func (repo *MasterUserRepository) FindByID(masterID uint) (models.MasterUser, error) {
	var master models.MasterUser
	if err := repo.database.First(&master, masterID).Error; err != nil {
		return models.MasterUser{}, err
	}
	return master, nil
}

func (repo *MasterUserRepository) FindByUsername(username string) (models.MasterUser, error) {
	var master models.MasterUser
	if err := repo.database.Where("username = ?", username).First(&master).Error; err != nil {
		return models.MasterUser{}, err
	}
	return master, nil
}

func (repo *MasterUserRepository) ExistsByUsername(username string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.MasterUser{}).
		Where("username = ?", username).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *MasterUserRepository) Create(master *models.MasterUser) error {
	return repo.database.Create(master).Error
}
