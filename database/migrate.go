package database

import (
	"devconnector_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate прогоняет авто-миграцию всех моделей приложения
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Profile{},
	)
}
