package dtos

import (
	"time"

	"github.com/just-nibble/github-link/internal/adapters/api"
)

// Repository is the repository snapshot the client selected from its
// repository listing, echoed back when creating a project
type Repository struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	FullName    string    `json:"full_name"`
	URL         string    `json:"html_url"`
	Private     bool      `json:"private"`
	Language    string    `json:"language"`
	Description string    `json:"description"`
	StarsCount  int       `json:"stargazers_count"`
	ForksCount  int       `json:"forks_count"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToAPI converts the dto into the API repository shape the services use
func (r Repository) ToAPI() *api.Repository {
	return &api.Repository{
		ID:          r.ID,
		Name:        r.Name,
		FullName:    r.FullName,
		URL:         r.URL,
		Private:     r.Private,
		Language:    r.Language,
		Description: r.Description,
		StarsCount:  r.StarsCount,
		ForksCount:  r.ForksCount,
		UpdatedAt:   r.UpdatedAt,
	}
}

// CreateProjectInput is the payload for promoting a repository to a
// tracked project
type CreateProjectInput struct {
	UserID      string     `json:"user_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Repository  Repository `json:"repository"`
}

// UpdateProjectInput edits a project's user-editable fields
type UpdateProjectInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
