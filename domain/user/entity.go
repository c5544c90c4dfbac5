package user

import (
	"time"
)

// User represents a user entity in the system.
type User struct {
	ID           string `gorm:"primaryKey;type:text"`
	Username     string `gorm:"uniqueIndex;not null;type:text"`
	Email        string `gorm:"type:text"`
	FirstName    string `gorm:"type:text"`
	LastName     string `gorm:"type:text"`
	PasswordHash string `gorm:"not null;type:text"`
	Active       bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName returns the table name for the User entity.
func (User) TableName() string {
	return "users"
}

// RevokedToken records a refresh token invalidated by logout. Rows are keyed
// by the token's JWT ID and only matter until the token would have expired
// on its own.
type RevokedToken struct {
	JTI       string `gorm:"primaryKey;type:text"`
	ExpiresAt time.Time
	RevokedAt time.Time
}

// TableName returns the table name for the RevokedToken entity.
func (RevokedToken) TableName() string {
	return "revoked_tokens"
}

// TokenPair represents access and refresh tokens.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	TokenType    string `json:"token_type"`
}

// Claims represents JWT claims.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}
