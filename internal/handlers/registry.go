package handlers

import (
	"devconnector_backend/internal/services"
	"devconnector_backend/internal/validator"
)

// AppHandlers собирает все HTTP-хендлеры приложения
type AppHandlers struct {
	Auth    *AuthHandler
	Profile *ProfileHandler
}

func NewAppHandlers(v *validator.Validator, svc *services.ServiceContainer) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:    NewAuthHandler(base, svc.AuthService),
		Profile: NewProfileHandler(base, svc.ProfileService, svc.AccountService, svc.GithubService),
	}
}
