package app

import (
	"fmt"
	"log/slog"

	"devconnector_backend/database"
	"devconnector_backend/internal/config"
	"devconnector_backend/internal/handlers"
	"devconnector_backend/internal/logger"
	"devconnector_backend/internal/middleware"
	"devconnector_backend/internal/repositories"
	"devconnector_backend/internal/routes"
	"devconnector_backend/internal/services"
	"devconnector_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Run поднимает приложение: конфиг, логгер, БД, миграции, роутер
func Run() error {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)
	log := logger.GetLogger()

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("unwrap sql.DB: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	log.Info("Database connection established")

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	log.Info("Database migrations applied")

	router := SetupRouter(cfg, db)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("Starting HTTP server", slog.String("addr", addr), slog.String("env", cfg.Server.Env))

	return router.Run(addr)
}

// SetupRouter собирает gin.Engine со всеми зависимостями.
// Вынесен отдельно, чтобы тесты могли поднять роутер на своей БД.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	userRepo := repositories.NewUserRepository()
	profileRepo := repositories.NewProfileRepository()

	svc := &services.ServiceContainer{
		AuthService:    services.NewAuthService(userRepo),
		ProfileService: services.NewProfileService(profileRepo, userRepo),
		AccountService: services.NewAccountService(userRepo, profileRepo),
		GithubService:  services.NewGithubService(cfg.Github.BaseURL, cfg.Github.Token),
	}

	v := validator.New()
	appHandlers := handlers.NewAppHandlers(v, svc)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))

	routes.RegisterRoutes(router, appHandlers)

	return router
}
