package models

type User struct {
	BaseModelWithDeleted
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Avatar       string `json:"avatar"`

	// Relations
	Profile *Profile `gorm:"foreignKey:UserID" json:"-"`
}
