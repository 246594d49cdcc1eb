package service

import (
	"context"
	"time"

	"github.com/just-nibble/github-link/internal/adapters/api"
	"github.com/just-nibble/github-link/internal/adapters/db"
	"github.com/just-nibble/github-link/internal/core/domain/entities"
	"github.com/just-nibble/github-link/pkg/errcodes"
)

// ProjectService manages the user's tracked projects, each pointing at
// exactly one GitHub repository.
type ProjectService struct {
	ps db.ProjectStore
}

func NewProjectService(ps db.ProjectStore) *ProjectService {
	return &ProjectService{ps: ps}
}

// CreateFromRepository promotes a repository to a tracked project,
// snapshotting its metadata at creation time. A user can have at most one
// project per repository; a second attempt fails with ErrDuplicateProject
// before any write happens. Name defaults to the repository name.
func (s *ProjectService) CreateFromRepository(ctx context.Context, userID string, repo *api.Repository, name, description string) (*entities.Project, error) {
	exists, err := s.ps.ProjectExistsForRepo(ctx, userID, repo.ID)
	if err != nil {
		return nil, &errcodes.PersistenceError{Op: "check project", Err: err}
	}
	if exists {
		return nil, errcodes.ErrDuplicateProject
	}

	if name == "" {
		name = repo.Name
	}

	now := time.Now()
	project := &entities.Project{
		UserID:          userID,
		GithubRepoID:    repo.ID,
		Name:            name,
		Description:     description,
		RepoName:        repo.Name,
		RepoFullName:    repo.FullName,
		RepoURL:         repo.URL,
		RepoPrivate:     repo.Private,
		RepoLanguage:    repo.Language,
		RepoDescription: repo.Description,
		StarsCount:      repo.StarsCount,
		ForksCount:      repo.ForksCount,
		RepoUpdatedAt:   repo.UpdatedAt,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.ps.CreateProject(ctx, project); err != nil {
		return nil, &errcodes.PersistenceError{Op: "create project", Err: err}
	}

	return project, nil
}

// List returns all of the user's projects, newest first
func (s *ProjectService) List(ctx context.Context, userID string) ([]entities.Project, error) {
	projects, err := s.ps.GetProjectsByUserID(ctx, userID)
	if err != nil {
		return nil, &errcodes.PersistenceError{Op: "list projects", Err: err}
	}
	return projects, nil
}

// Get returns one project scoped to its owner, or (nil, nil) when absent
func (s *ProjectService) Get(ctx context.Context, userID string, projectID uint) (*entities.Project, error) {
	project, err := s.ps.GetProjectByID(ctx, userID, projectID)
	if err != nil {
		return nil, &errcodes.PersistenceError{Op: "get project", Err: err}
	}
	return project, nil
}

// Update edits the user-editable fields. Only name and description are
// mutable; the repository snapshot is fixed at creation time.
func (s *ProjectService) Update(ctx context.Context, userID string, projectID uint, name, description string) (*entities.Project, error) {
	project, err := s.Get(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, nil
	}

	if name != "" {
		project.Name = name
	}
	project.Description = description
	project.UpdatedAt = time.Now()

	if err := s.ps.SaveProject(ctx, project); err != nil {
		return nil, &errcodes.PersistenceError{Op: "update project", Err: err}
	}

	return project, nil
}

// Delete removes a project
func (s *ProjectService) Delete(ctx context.Context, userID string, projectID uint) error {
	if err := s.ps.DeleteProject(ctx, userID, projectID); err != nil {
		return &errcodes.PersistenceError{Op: "delete project", Err: err}
	}
	return nil
}
