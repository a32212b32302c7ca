package services

import (
	"net/http"
	"time"

	"visualvibe_backend/internal/logger"
	"visualvibe_backend/internal/models"
	"visualvibe_backend/internal/repositories"
	"visualvibe_backend/internal/services/dto"
	"visualvibe_backend/pkg/apperrors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrInvalidCredentials deliberately does not reveal whether the username,
// the active flag or the password failed.
var ErrInvalidCredentials = apperrors.New(
	apperrors.CodeInvalidCredentials, "Invalid credentials", http.StatusUnauthorized)

// AuthService is the session auth gate. Sessions are opaque tokens stored
// server-side; revoking one is deleting its row.
type AuthService interface {
	Login(db *gorm.DB, username, password string) (*dto.AdminInfo, string, error)
	Logout(db *gorm.DB, token string) error
	Check(db *gorm.DB, token string) (*dto.AdminInfo, bool)
}

type authService struct {
	adminRepo  repositories.AdminRepository
	sessionTTL time.Duration
}

func NewAuthService(adminRepo repositories.AdminRepository, sessionTTL time.Duration) AuthService {
	return &authService{
		adminRepo:  adminRepo,
		sessionTTL: sessionTTL,
	}
}

// Login verifies the credentials, records last_login and opens a session.
// The returned token goes into an HTTP-only cookie by the handler.
func (s *authService) Login(db *gorm.DB, username, password string) (*dto.AdminInfo, string, error) {
	admin, err := s.adminRepo.FindActiveByUsername(db, username)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAdminNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", apperrors.InternalError(err)
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	session := &models.AdminSession{
		Token:     uuid.NewString(),
		AdminID:   admin.ID,
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}
	if err := s.adminRepo.CreateSession(db, session); err != nil {
		return nil, "", apperrors.InternalError(err)
	}

	if err := s.adminRepo.TouchLastLogin(db, admin.ID); err != nil {
		logger.Warn("failed to record last_login", "admin_id", admin.ID, "error", err)
	}

	// Opportunistic cleanup; stale rows are harmless but pile up.
	if err := s.adminRepo.DeleteExpiredSessions(db); err != nil {
		logger.Warn("failed to prune expired sessions", "error", err)
	}

	return &dto.AdminInfo{
		ID:       admin.ID,
		Username: admin.Username,
		FullName: admin.FullName,
	}, session.Token, nil
}

// Logout destroys the session unconditionally; an unknown token is not an
// error.
func (s *authService) Logout(db *gorm.DB, token string) error {
	if token == "" {
		return nil
	}
	if err := s.adminRepo.DeleteSession(db, token); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// Check reports whether token belongs to a live session and returns the
// carried identity. Expired sessions are removed on sight.
func (s *authService) Check(db *gorm.DB, token string) (*dto.AdminInfo, bool) {
	if token == "" {
		return nil, false
	}

	session, err := s.adminRepo.FindSession(db, token)
	if err != nil {
		return nil, false
	}

	if time.Now().After(session.ExpiresAt) {
		if err := s.adminRepo.DeleteSession(db, token); err != nil {
			logger.Warn("failed to delete expired session", "error", err)
		}
		return nil, false
	}

	if session.Admin == nil || !session.Admin.IsActive {
		return nil, false
	}

	return &dto.AdminInfo{
		ID:       session.Admin.ID,
		Username: session.Admin.Username,
		FullName: session.Admin.FullName,
	}, true
}
