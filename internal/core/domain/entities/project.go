package entities

import (
	"time"
)

// Project is a user-created pointer to one GitHub repository, carrying a
// denormalized snapshot of the repository metadata taken at creation time.
// Only Name and Description are user-editable afterwards.
type Project struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	UserID       string `json:"user_id" gorm:"uniqueIndex:idx_user_repo,priority:1"`
	GithubRepoID int64  `json:"github_repo_id" gorm:"uniqueIndex:idx_user_repo,priority:2"`

	Name        string `json:"name"`
	Description string `json:"description"`

	// Repository snapshot at creation time
	RepoName        string    `json:"repo_name"`
	RepoFullName    string    `json:"repo_full_name"`
	RepoURL         string    `json:"repo_url"`
	RepoPrivate     bool      `json:"repo_private"`
	RepoLanguage    string    `json:"repo_language"`
	RepoDescription string    `json:"repo_description"`
	StarsCount      int       `json:"stargazers_count"`
	ForksCount      int       `json:"forks_count"`
	RepoUpdatedAt   time.Time `json:"repo_updated_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
