package services

import (
	"devconnector_backend/internal/repositories"
	"devconnector_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// AccountService координирует удаление аккаунта: пользователь и профиль
// помечаются удаленными как одна логическая операция.
type AccountService interface {
	DeleteAccount(db *gorm.DB, userID string) error
}

type AccountServiceImpl struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
}

func NewAccountService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
) AccountService {
	return &AccountServiceImpl{
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

// DeleteAccount soft-удаляет профиль и пользователя в одной транзакции.
// Частичное применение невозможно: любая из двух записей не записалась -
// откатываются обе.
func (s *AccountServiceImpl) DeleteAccount(db *gorm.DB, userID string) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := s.profileRepo.SoftDelete(tx, userID); err != nil {
			return err
		}
		return s.userRepo.SoftDelete(tx, userID)
	})

	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}
