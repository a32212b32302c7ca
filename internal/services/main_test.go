package services

import (
	"testing"

	"visualvibe_backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database migrated with every model.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
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
	))

	return db
}

func boolPtr(b bool) *bool { return &b }
