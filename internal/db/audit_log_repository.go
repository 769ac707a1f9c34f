package db

import (
	"github.com/caioaraujo/grana/internal/models"
	"gorm.io/gorm"
)

type AuditLogRepository struct {
	database *gorm.DB
}

func NewAuditLogRepository(database *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{database: database}
}

func (repo *AuditLogRepository) Create(entry *models.AuditLog) error {
	return repo.database.Create(entry).Error
}

func (repo *AuditLogRepository) ListAll() ([]models.AuditLog, error) {
	entries := make([]models.AuditLog, 0)
	if err := repo.database.Order("timestamp DESC, id DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *AuditLogRepository) FindByID(entryID uint) (models.AuditLog, error) {
	var entry models.AuditLog
	if err := repo.database.First(&entry, entryID).Error; err != nil {
		return models.AuditLog{}, err
	}
	return entry, nil
}

func (repo *AuditLogRepository) Delete(entryID uint) error {
	return repo.database.Delete(&models.AuditLog{}, entryID).Error
}
