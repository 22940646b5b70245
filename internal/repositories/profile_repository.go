package repositories

import (
	"errors"

	"devconnector_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile already exists for this user")
)

type ProfileRepository interface {
	Create(db *gorm.DB, profile *models.Profile) error
	FindByUserID(db *gorm.DB, userID string) (*models.Profile, error)
	FindByUserIDWithUser(db *gorm.DB, userID string) (*models.Profile, error)
	FindAllWithUsers(db *gorm.DB) ([]models.Profile, error)
	UpdateFields(db *gorm.DB, userID string, fields map[string]interface{}) error
	Save(db *gorm.DB, profile *models.Profile) error
	SoftDelete(db *gorm.DB, userID string) error
}

type ProfileRepositoryImpl struct{}

func NewProfileRepository() ProfileRepository {
	return &ProfileRepositoryImpl{}
}

func (r *ProfileRepositoryImpl) Create(db *gorm.DB, profile *models.Profile) error {
	if err := db.Create(profile).Error; err != nil {
		// Уникальный индекс user_id - защита от двух профилей
		// при конкурентном upsert.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrProfileAlreadyExists
		}
		return err
	}
	return nil
}

func (r *ProfileRepositoryImpl) FindByUserID(db *gorm.DB, userID string) (*models.Profile, error) {
	var profile models.Profile
	err := db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindByUserIDWithUser(db *gorm.DB, userID string) (*models.Profile, error) {
	var profile models.Profile
	err := db.Preload("User").First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindAllWithUsers(db *gorm.DB) ([]models.Profile, error) {
	var profiles []models.Profile
	err := db.Preload("User").Order("created_at DESC").Find(&profiles).Error
	return profiles, err
}

// UpdateFields применяет частичное обновление: затрагиваются только
// переданные колонки, остальное (включая experience/education) не трогается.
func (r *ProfileRepositoryImpl) UpdateFields(db *gorm.DB, userID string, fields map[string]interface{}) error {
	result := db.Model(&models.Profile{}).Where("user_id = ?", userID).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// Save сохраняет профиль целиком (используется мутациями sub-коллекций)
func (r *ProfileRepositoryImpl) Save(db *gorm.DB, profile *models.Profile) error {
	return db.Save(profile).Error
}

func (r *ProfileRepositoryImpl) SoftDelete(db *gorm.DB, userID string) error {
	// Отсутствие профиля - не ошибка: аккаунт можно удалить
	// и до того, как профиль был создан.
	return db.Where("user_id = ?", userID).Delete(&models.Profile{}).Error
}
