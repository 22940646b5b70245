package handlers

import (
	"net/http"

	"devconnector_backend/internal/middleware"
	"devconnector_backend/internal/services"
	"devconnector_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
	accountService services.AccountService
	githubService  services.GithubService
}

func NewProfileHandler(
	base *BaseHandler,
	profileService services.ProfileService,
	accountService services.AccountService,
	githubService services.GithubService,
) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
		accountService: accountService,
		githubService:  githubService,
	}
}

func (h *ProfileHandler) RegisterRoutes(r *gin.RouterGroup) {
	public := r.Group("/profile")
	{
		public.GET("", h.ListProfiles)
		public.GET("/user/:userId", h.GetProfileByUserID)
		public.GET("/github/:username", h.GetGithubRepos)
	}

	protected := r.Group("/profile")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/me", h.GetMyProfile)
		protected.POST("", h.UpsertProfile)
		protected.DELETE("", h.DeleteAccount)
		protected.PUT("/experience", h.AddExperience)
		protected.DELETE("/experience/:expId", h.RemoveExperience)
		protected.PUT("/education", h.AddEducation)
		protected.DELETE("/education/:eduId", h.RemoveEducation)
	}
}

// GetMyProfile - GET /profile/me: профиль владельца токена
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetMyProfile(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpsertProfile - POST /profile: создать или частично обновить
func (h *ProfileHandler) UpsertProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpsertProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	profile, err := h.profileService.UpsertProfile(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// ListProfiles - GET /profile: все профили с данными владельцев
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	profiles, err := h.profileService.ListProfiles(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profiles)
}

// GetProfileByUserID - GET /profile/user/:userId: публичная выборка
func (h *ProfileHandler) GetProfileByUserID(c *gin.Context) {
	profile, err := h.profileService.GetProfileByUserID(h.GetDB(c), c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// DeleteAccount - DELETE /profile: профиль и пользователь удаляются вместе
func (h *ProfileHandler) DeleteAccount(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.accountService.DeleteAccount(h.GetDB(c), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "User deleted"})
}

// AddExperience - PUT /profile/experience
func (h *ProfileHandler) AddExperience(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.AddExperienceRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	profile, err := h.profileService.AddExperience(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// RemoveExperience - DELETE /profile/experience/:expId
func (h *ProfileHandler) RemoveExperience(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.RemoveExperience(h.GetDB(c), userID, c.Param("expId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// AddEducation - PUT /profile/education
func (h *ProfileHandler) AddEducation(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.AddEducationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	profile, err := h.profileService.AddEducation(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// RemoveEducation - DELETE /profile/education/:eduId
func (h *ProfileHandler) RemoveEducation(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.RemoveEducation(h.GetDB(c), userID, c.Param("eduId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetGithubRepos - GET /profile/github/:username: прокси к Github
func (h *ProfileHandler) GetGithubRepos(c *gin.Context) {
	repos, err := h.githubService.ListRepos(c.Request.Context(), c.Param("username"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, repos)
}
