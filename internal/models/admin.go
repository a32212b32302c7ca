package models

import "time"

type AdminUser struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Username     string     `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string     `gorm:"not null" json:"-"`
	FullName     string     `json:"full_name"`
	IsActive     bool       `gorm:"not null;default:true" json:"is_active"`
	LastLogin    *time.Time `json:"last_login"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (AdminUser) TableName() string { return "admin_users" }

// AdminSession is a server-side session record. The opaque token travels in
// an HTTP-only cookie; deleting the row revokes the session immediately.
type AdminSession struct {
	Token     string    `gorm:"primaryKey" json:"-"`
	AdminID   uint      `gorm:"not null;index" json:"admin_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`

	Admin *AdminUser `gorm:"foreignKey:AdminID" json:"-"`
}

func (AdminSession) TableName() string { return "admin_sessions" }
