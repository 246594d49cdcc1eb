package mocks

import (
	"context"

	"github.com/just-nibble/github-link/internal/core/domain/entities"
	"github.com/stretchr/testify/mock"
)

// ProjectStore mock
type ProjectStore struct {
	mock.Mock
}

func (m *ProjectStore) CreateProject(ctx context.Context, project *entities.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *ProjectStore) ProjectExistsForRepo(ctx context.Context, userID string, githubRepoID int64) (bool, error) {
	args := m.Called(ctx, userID, githubRepoID)
	return args.Bool(0), args.Error(1)
}

func (m *ProjectStore) GetProjectByID(ctx context.Context, userID string, projectID uint) (*entities.Project, error) {
	args := m.Called(ctx, userID, projectID)
	project, _ := args.Get(0).(*entities.Project)
	return project, args.Error(1)
}

func (m *ProjectStore) GetProjectsByUserID(ctx context.Context, userID string) ([]entities.Project, error) {
	args := m.Called(ctx, userID)
	projects, _ := args.Get(0).([]entities.Project)
	return projects, args.Error(1)
}

func (m *ProjectStore) SaveProject(ctx context.Context, project *entities.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *ProjectStore) DeleteProject(ctx context.Context, userID string, projectID uint) error {
	args := m.Called(ctx, userID, projectID)
	return args.Error(0)
}
