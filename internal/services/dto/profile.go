package dto

import (
	"time"

	"devconnector_backend/internal/models"
)

// UpsertProfileRequest - создание/обновление профиля.
// Опциональные поля - указатели: nil означает "не трогать при обновлении".
// Skills приходит одной строкой через запятую, как в клиентской форме.
type UpsertProfileRequest struct {
	Status         string  `json:"status" validate:"required"`
	Skills         string  `json:"skills" validate:"required,skills-list"`
	Company        *string `json:"company,omitempty"`
	Website        *string `json:"website,omitempty" validate:"omitempty,url"`
	Location       *string `json:"location,omitempty"`
	Bio            *string `json:"bio,omitempty" validate:"omitempty,max=2000"`
	GithubUsername *string `json:"github_username,omitempty"`

	// Соцсети; блок social пересобирается из присутствующих полей
	Youtube   *string `json:"youtube,omitempty" validate:"omitempty,url"`
	Twitter   *string `json:"twitter,omitempty" validate:"omitempty,url"`
	Facebook  *string `json:"facebook,omitempty" validate:"omitempty,url"`
	Linkedin  *string `json:"linkedin,omitempty" validate:"omitempty,url"`
	Instagram *string `json:"instagram,omitempty" validate:"omitempty,url"`
}

type AddExperienceRequest struct {
	Title       string     `json:"title" validate:"required"`
	Company     string     `json:"company" validate:"required"`
	Location    string     `json:"location"`
	From        time.Time  `json:"from" validate:"required"`
	To          *time.Time `json:"to,omitempty"`
	Current     bool       `json:"current"`
	Description string     `json:"description" validate:"omitempty,max=2000"`
}

type AddEducationRequest struct {
	School       string     `json:"school" validate:"required"`
	Degree       string     `json:"degree" validate:"required"`
	FieldOfStudy string     `json:"field_of_study" validate:"required"`
	From         time.Time  `json:"from" validate:"required"`
	To           *time.Time `json:"to,omitempty"`
	Current      bool       `json:"current"`
	Description  string     `json:"description" validate:"omitempty,max=2000"`
}

// PublicUser - поля владельца, которые подмешиваются в ответ профиля
type PublicUser struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type ProfileResponse struct {
	ID             string                   `json:"id"`
	UserID         string                   `json:"user_id"`
	User           *PublicUser              `json:"user,omitempty"`
	Company        string                   `json:"company,omitempty"`
	Website        string                   `json:"website,omitempty"`
	Location       string                   `json:"location,omitempty"`
	Bio            string                   `json:"bio,omitempty"`
	Status         string                   `json:"status"`
	GithubUsername string                   `json:"github_username,omitempty"`
	Skills         []string                 `json:"skills"`
	Social         models.SocialLinks       `json:"social"`
	Experience     []models.ExperienceEntry `json:"experience"`
	Education      []models.EducationEntry  `json:"education"`
	CreatedAt      time.Time                `json:"created_at"`
	UpdatedAt      time.Time                `json:"updated_at"`
}

// NewProfileResponse распаковывает JSON-колонки модели в типизированный ответ
func NewProfileResponse(p *models.Profile) *ProfileResponse {
	resp := &ProfileResponse{
		ID:             p.ID,
		UserID:         p.UserID,
		Company:        p.Company,
		Website:        p.Website,
		Location:       p.Location,
		Bio:            p.Bio,
		Status:         p.Status,
		GithubUsername: p.GithubUsername,
		Skills:         p.GetSkills(),
		Social:         p.GetSocial(),
		Experience:     p.GetExperience(),
		Education:      p.GetEducation(),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	if resp.Skills == nil {
		resp.Skills = []string{}
	}
	if resp.Experience == nil {
		resp.Experience = []models.ExperienceEntry{}
	}
	if resp.Education == nil {
		resp.Education = []models.EducationEntry{}
	}
	if p.User != nil {
		resp.User = &PublicUser{
			ID:     p.User.ID,
			Name:   p.User.Name,
			Avatar: p.User.Avatar,
		}
	}
	return resp
}
