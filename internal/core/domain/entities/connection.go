package entities

import (
	"time"
)

// Connection represents one user's link to one external GitHub identity.
// At most one row exists per user; reconnecting replaces the credential.
type Connection struct {
	ID              uint   `json:"-" gorm:"primaryKey"`
	UserID          string `json:"user_id" gorm:"uniqueIndex"`
	GithubUserID    int64  `json:"github_user_id"`
	GithubUsername  string `json:"github_username"`
	GithubAvatarURL string `json:"github_avatar_url"`

	// Credential material. Never logged, never serialized.
	AccessToken string `json:"-" gorm:"type:text"`
	TokenType   string `json:"-"`
	Scope       string `json:"-"`

	ConnectedAt time.Time `json:"connected_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
