package repositories

import (
	"errors"
	"time"

	"visualvibe_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrAdminNotFound   = errors.New("admin user not found")
	ErrSessionNotFound = errors.New("session not found")
)

type AdminRepository interface {
	FindActiveByUsername(db *gorm.DB, username string) (*models.AdminUser, error)
	FindByUsername(db *gorm.DB, username string) (*models.AdminUser, error)
	Create(db *gorm.DB, admin *models.AdminUser) error
	TouchLastLogin(db *gorm.DB, id uint) error

	CreateSession(db *gorm.DB, session *models.AdminSession) error
	FindSession(db *gorm.DB, token string) (*models.AdminSession, error)
	DeleteSession(db *gorm.DB, token string) error
	DeleteExpiredSessions(db *gorm.DB) error
}

type adminRepository struct{}

func NewAdminRepository() AdminRepository {
	return &adminRepository{}
}

func (r *adminRepository) FindActiveByUsername(db *gorm.DB, username string) (*models.AdminUser, error) {
	var admin models.AdminUser
	err := db.Where("username = ? AND is_active = ?", username, true).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) FindByUsername(db *gorm.DB, username string) (*models.AdminUser, error) {
	var admin models.AdminUser
	err := db.Where("username = ?", username).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) Create(db *gorm.DB, admin *models.AdminUser) error {
	return db.Create(admin).Error
}

func (r *adminRepository) TouchLastLogin(db *gorm.DB, id uint) error {
	now := time.Now()
	return db.Model(&models.AdminUser{}).
		Where("id = ?", id).
		Update("last_login", now).Error
}

func (r *adminRepository) CreateSession(db *gorm.DB, session *models.AdminSession) error {
	return db.Create(session).Error
}

func (r *adminRepository) FindSession(db *gorm.DB, token string) (*models.AdminSession, error) {
	var session models.AdminSession
	err := db.Preload("Admin").Where("token = ?", token).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

// DeleteSession revokes a session unconditionally; a missing token is fine.
func (r *adminRepository) DeleteSession(db *gorm.DB, token string) error {
	return db.Delete(&models.AdminSession{}, "token = ?", token).Error
}

func (r *adminRepository) DeleteExpiredSessions(db *gorm.DB) error {
	return db.Delete(&models.AdminSession{}, "expires_at < ?", time.Now()).Error
}
