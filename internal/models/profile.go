package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

type Profile struct {
	BaseModelWithDeleted
	UserID         string `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Bio            string `json:"bio"`
	Status         string `gorm:"not null" json:"status"`
	GithubUsername string `json:"github_username"`

	// Встроенные коллекции хранятся как JSON-документы,
	// порядок элементов - порядок в массиве.
	Skills     datatypes.JSON `gorm:"type:jsonb" json:"skills"`
	Social     datatypes.JSON `gorm:"type:jsonb" json:"social"`
	Experience datatypes.JSON `gorm:"type:jsonb" json:"experience"`
	Education  datatypes.JSON `gorm:"type:jsonb" json:"education"`

	// Relations
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// SocialLinks - вложенный объект соцсетей профиля
type SocialLinks struct {
	Youtube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// ExperienceEntry - запись об опыте работы, принадлежит профилю.
// ID назначается при вставке и больше не меняется.
type ExperienceEntry struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location,omitempty"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to,omitempty"`
	Current     bool       `json:"current"`
	Description string     `json:"description,omitempty"`
}

// EducationEntry - запись об образовании, принадлежит профилю
type EducationEntry struct {
	ID           string     `json:"id"`
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"field_of_study"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to,omitempty"`
	Current      bool       `json:"current"`
	Description  string     `json:"description,omitempty"`
}

// GetSkills возвращает навыки профиля как slice строк
func (p *Profile) GetSkills() []string {
	var skills []string
	if len(p.Skills) > 0 {
		_ = json.Unmarshal(p.Skills, &skills)
	}
	return skills
}

// SetSkills устанавливает навыки профиля
func (p *Profile) SetSkills(skills []string) {
	data, _ := json.Marshal(skills)
	p.Skills = datatypes.JSON(data)
}

// GetSocial возвращает соцсети профиля
func (p *Profile) GetSocial() SocialLinks {
	var social SocialLinks
	if len(p.Social) > 0 {
		_ = json.Unmarshal(p.Social, &social)
	}
	return social
}

// SetSocial устанавливает соцсети профиля
func (p *Profile) SetSocial(social SocialLinks) {
	data, _ := json.Marshal(social)
	p.Social = datatypes.JSON(data)
}

// GetExperience возвращает опыт работы (от новых к старым)
func (p *Profile) GetExperience() []ExperienceEntry {
	var entries []ExperienceEntry
	if len(p.Experience) > 0 {
		_ = json.Unmarshal(p.Experience, &entries)
	}
	return entries
}

// SetExperience устанавливает опыт работы
func (p *Profile) SetExperience(entries []ExperienceEntry) {
	data, _ := json.Marshal(entries)
	p.Experience = datatypes.JSON(data)
}

// GetEducation возвращает образование (от новых к старым)
func (p *Profile) GetEducation() []EducationEntry {
	var entries []EducationEntry
	if len(p.Education) > 0 {
		_ = json.Unmarshal(p.Education, &entries)
	}
	return entries
}

// SetEducation устанавливает образование
func (p *Profile) SetEducation(entries []EducationEntry) {
	data, _ := json.Marshal(entries)
	p.Education = datatypes.JSON(data)
}
