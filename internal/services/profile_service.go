package services

import (
	"encoding/json"
	"strings"

	"devconnector_backend/internal/models"
	"devconnector_backend/internal/repositories"
	"devconnector_backend/internal/services/dto"
	"devconnector_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProfileService - мутации и выборки профиля текущего пользователя.
// Все методы принимают *gorm.DB: пул соединений или транзакцию.
type ProfileService interface {
	GetMyProfile(db *gorm.DB, userID string) (*dto.ProfileResponse, error)
	UpsertProfile(db *gorm.DB, userID string, req *dto.UpsertProfileRequest) (*dto.ProfileResponse, error)
	ListProfiles(db *gorm.DB) ([]*dto.ProfileResponse, error)
	GetProfileByUserID(db *gorm.DB, userID string) (*dto.ProfileResponse, error)
	AddExperience(db *gorm.DB, userID string, req *dto.AddExperienceRequest) (*dto.ProfileResponse, error)
	RemoveExperience(db *gorm.DB, userID, entryID string) (*dto.ProfileResponse, error)
	AddEducation(db *gorm.DB, userID string, req *dto.AddEducationRequest) (*dto.ProfileResponse, error)
	RemoveEducation(db *gorm.DB, userID, entryID string) (*dto.ProfileResponse, error)
}

type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
	userRepo    repositories.UserRepository
}

func NewProfileService(
	profileRepo repositories.ProfileRepository,
	userRepo repositories.UserRepository,
) ProfileService {
	return &ProfileServiceImpl{
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

// GetMyProfile возвращает профиль владельца токена.
// Неявного создания нет: отсутствие профиля - ошибка клиента.
func (s *ProfileServiceImpl) GetMyProfile(db *gorm.DB, userID string) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.FindByUserIDWithUser(db, userID)
	if err != nil {
		return nil, handleProfileError(err)
	}
	return dto.NewProfileResponse(profile), nil
}

// UpsertProfile - создать профиль или частично обновить существующий.
// Применяются только присутствующие поля; experience/education
// этой операцией не затрагиваются никогда.
func (s *ProfileServiceImpl) UpsertProfile(db *gorm.DB, userID string, req *dto.UpsertProfileRequest) (*dto.ProfileResponse, error) {
	fields := buildProfileFields(req)

	_, err := s.profileRepo.FindByUserID(db, userID)
	switch {
	case err == nil:
		if err := s.profileRepo.UpdateFields(db, userID, fields); err != nil {
			return nil, apperrors.InternalError(err)
		}

	case apperrors.Is(err, repositories.ErrProfileNotFound):
		profile := buildNewProfile(userID, req)
		if createErr := s.profileRepo.Create(db, profile); createErr != nil {
			if !apperrors.Is(createErr, repositories.ErrProfileAlreadyExists) {
				return nil, apperrors.InternalError(createErr)
			}
			// Конкурентный upsert успел создать профиль первым:
			// уникальный индекс по user_id гарантирует один документ,
			// мы откатываемся на ветку обновления.
			if updErr := s.profileRepo.UpdateFields(db, userID, fields); updErr != nil {
				return nil, apperrors.InternalError(updErr)
			}
		}

	default:
		return nil, apperrors.InternalError(err)
	}

	updated, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewProfileResponse(updated), nil
}

// ListProfiles возвращает все живые профили с полями владельца.
// Профиль без пользователя - нарушение целостности данных, а не
// пропускаемая строка.
func (s *ProfileServiceImpl) ListProfiles(db *gorm.DB) ([]*dto.ProfileResponse, error) {
	profiles, err := s.profileRepo.FindAllWithUsers(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.ProfileResponse, 0, len(profiles))
	for i := range profiles {
		if profiles[i].User == nil {
			return nil, apperrors.InternalError(
				apperrors.New(apperrors.CodeDatabaseError, "profile", "profile without owning user: "+profiles[i].ID, 500))
		}
		responses = append(responses, dto.NewProfileResponse(&profiles[i]))
	}
	return responses, nil
}

// GetProfileByUserID - публичная выборка профиля.
// Синтаксически невалидный id и отсутствующий профиль дают один и тот же
// ответ: различать их для внешнего клиента смысла нет.
func (s *ProfileServiceImpl) GetProfileByUserID(db *gorm.DB, userID string) (*dto.ProfileResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, apperrors.ErrProfileNotFound
	}

	profile, err := s.profileRepo.FindByUserIDWithUser(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewProfileResponse(profile), nil
}

// AddExperience вставляет запись в голову списка (новые - первыми)
func (s *ProfileServiceImpl) AddExperience(db *gorm.DB, userID string, req *dto.AddExperienceRequest) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		return nil, handleProfileError(err)
	}

	entry := models.ExperienceEntry{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	}

	profile.SetExperience(append([]models.ExperienceEntry{entry}, profile.GetExperience()...))

	if err := s.profileRepo.Save(db, profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewProfileResponse(profile), nil
}

// RemoveExperience исключает запись по id, сохраняя порядок остальных.
// Неизвестный id - no-op: профиль пересохраняется без изменений.
func (s *ProfileServiceImpl) RemoveExperience(db *gorm.DB, userID, entryID string) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		return nil, handleProfileError(err)
	}

	entries := profile.GetExperience()
	kept := make([]models.ExperienceEntry, 0, len(entries))
	for _, e := range entries {
		if e.ID != entryID {
			kept = append(kept, e)
		}
	}
	profile.SetExperience(kept)

	if err := s.profileRepo.Save(db, profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewProfileResponse(profile), nil
}

// AddEducation вставляет запись в голову списка (новые - первыми)
func (s *ProfileServiceImpl) AddEducation(db *gorm.DB, userID string, req *dto.AddEducationRequest) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		return nil, handleProfileError(err)
	}

	entry := models.EducationEntry{
		ID:           uuid.NewString(),
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         req.From,
		To:           req.To,
		Current:      req.Current,
		Description:  req.Description,
	}

	profile.SetEducation(append([]models.EducationEntry{entry}, profile.GetEducation()...))

	if err := s.profileRepo.Save(db, profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewProfileResponse(profile), nil
}

// RemoveEducation исключает запись по id, неизвестный id - no-op
func (s *ProfileServiceImpl) RemoveEducation(db *gorm.DB, userID, entryID string) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		return nil, handleProfileError(err)
	}

	entries := profile.GetEducation()
	kept := make([]models.EducationEntry, 0, len(entries))
	for _, e := range entries {
		if e.ID != entryID {
			kept = append(kept, e)
		}
	}
	profile.SetEducation(kept)

	if err := s.profileRepo.Save(db, profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewProfileResponse(profile), nil
}

// --- helpers ---

func handleProfileError(err error) error {
	if apperrors.Is(err, repositories.ErrProfileNotFound) {
		return apperrors.ErrNoProfile
	}
	if appErr, ok := apperrors.AsAppError(err); ok {
		return appErr
	}
	return apperrors.InternalError(err)
}

// normalizeSkills разбивает строку по запятым и обрезает пробелы,
// пустые элементы выбрасываются
func normalizeSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}

func buildSocial(req *dto.UpsertProfileRequest) models.SocialLinks {
	var social models.SocialLinks
	if req.Youtube != nil {
		social.Youtube = *req.Youtube
	}
	if req.Twitter != nil {
		social.Twitter = *req.Twitter
	}
	if req.Facebook != nil {
		social.Facebook = *req.Facebook
	}
	if req.Linkedin != nil {
		social.Linkedin = *req.Linkedin
	}
	if req.Instagram != nil {
		social.Instagram = *req.Instagram
	}
	return social
}

// buildProfileFields собирает карту частичного обновления только из
// присутствующих полей запроса
func buildProfileFields(req *dto.UpsertProfileRequest) map[string]interface{} {
	skillsJSON, _ := json.Marshal(normalizeSkills(req.Skills))
	socialJSON, _ := json.Marshal(buildSocial(req))

	fields := map[string]interface{}{
		"status": req.Status,
		"skills": datatypes.JSON(skillsJSON),
		"social": datatypes.JSON(socialJSON),
	}
	if req.Company != nil {
		fields["company"] = *req.Company
	}
	if req.Website != nil {
		fields["website"] = *req.Website
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}
	if req.GithubUsername != nil {
		fields["github_username"] = *req.GithubUsername
	}
	return fields
}

func buildNewProfile(userID string, req *dto.UpsertProfileRequest) *models.Profile {
	profile := &models.Profile{
		UserID: userID,
		Status: req.Status,
	}
	if req.Company != nil {
		profile.Company = *req.Company
	}
	if req.Website != nil {
		profile.Website = *req.Website
	}
	if req.Location != nil {
		profile.Location = *req.Location
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.GithubUsername != nil {
		profile.GithubUsername = *req.GithubUsername
	}
	profile.SetSkills(normalizeSkills(req.Skills))
	profile.SetSocial(buildSocial(req))
	profile.SetExperience([]models.ExperienceEntry{})
	profile.SetEducation([]models.EducationEntry{})
	return profile
}
