package database

import (
	"fmt"

	"visualvibe_backend/internal/config"
	"visualvibe_backend/internal/logger"
	"visualvibe_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var gormDB *gorm.DB

// ConnectGorm initializes GORM with the DSN from configuration.
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate migrates every model the application persists.
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.CarouselSlide{},
		&models.TeamMember{},
		&models.WebsiteProject{},
		&models.LogoDesign{},
		&models.GraphicDesign{},
		&models.FlyerPoster{},
		&models.UiuxDesign{},
		&models.PortfolioVideo{},
		&models.Enquiry{},
		&models.AdminUser{},
		&models.AdminSession{},
	)
	if err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}

	logger.Info("AutoMigrate completed")
	return nil
}
