package app

import (
	"errors"
	"fmt"

	"visualvibe_backend/database"
	"visualvibe_backend/internal/config"
	"visualvibe_backend/internal/handlers"
	"visualvibe_backend/internal/logger"
	"visualvibe_backend/internal/middleware"
	"visualvibe_backend/internal/models"
	"visualvibe_backend/internal/routes"
	"visualvibe_backend/internal/services"
	"visualvibe_backend/internal/storage"
	"visualvibe_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Run() {
	// .env is a development convenience; in containers the variables come
	// from the environment directly.
	if err := godotenv.Load(); err == nil {
		fmt.Println("Loaded environment from .env")
	}

	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := SeedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter assembles storage, services, handlers and middleware into a
// ready gin engine. Tests call this directly against their own database.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
		UseSSL:    cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	serviceContainer := services.NewServiceContainer(cfg, storageInstance)

	base := handlers.NewBaseHandler(validator.New())
	appHandlers := handlers.NewAppHandlers(base, serviceContainer, cfg)

	router := initializeGinRouter(gormDB)

	routes.RegisterRoutes(router, appHandlers, serviceContainer.AuthService, cfg)

	return router
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

// SeedFirstAdmin creates the initial admin account from configuration when
// no user with that username exists yet.
func SeedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	username := cfg.Admin.Username
	password := cfg.Admin.Password

	if username == "" || password == "" {
		logger.Warn("Admin username or password not configured. Skipping admin seeding.")
		return nil
	}

	var admin models.AdminUser
	result := db.Where("username = ?", username).First(&admin)

	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "username", username)
		return nil
	}

	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found. Creating first admin...", "username", username)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.AdminUser{
		Username:     username,
		PasswordHash: string(hashedPassword),
		FullName:     cfg.Admin.FullName,
		IsActive:     true,
	}
	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("First admin user created", "username", username)
	return nil
}
