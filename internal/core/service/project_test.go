package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/just-nibble/github-link/internal/adapters/api"
	"github.com/just-nibble/github-link/internal/adapters/db/mocks"
	"github.com/just-nibble/github-link/internal/core/domain/entities"
	"github.com/just-nibble/github-link/pkg/errcodes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func sampleRepository() *api.Repository {
	return &api.Repository{
		ID:          101,
		Name:        "hello-world",
		FullName:    "octocat/hello-world",
		URL:         "https://github.com/octocat/hello-world",
		Private:     false,
		Language:    "Go",
		Description: "My first repository",
		StarsCount:  100,
		ForksCount:  42,
		UpdatedAt:   time.Date(2024, 8, 19, 10, 0, 0, 0, time.UTC),
	}
}

func TestCreateFromRepositorySnapshotsMetadata(t *testing.T) {
	store := new(mocks.ProjectStore)
	store.On("ProjectExistsForRepo", mock.Anything, "user-1", int64(101)).Return(false, nil)
	store.On("CreateProject", mock.Anything, mock.AnythingOfType("*entities.Project")).Return(nil)

	svc := NewProjectService(store)

	project, err := svc.CreateFromRepository(context.Background(), "user-1", sampleRepository(), "My tracker", "Issues I care about")
	assert.NoError(t, err)

	assert.Equal(t, "user-1", project.UserID)
	assert.Equal(t, int64(101), project.GithubRepoID)
	assert.Equal(t, "My tracker", project.Name)
	assert.Equal(t, "Issues I care about", project.Description)
	assert.Equal(t, "octocat/hello-world", project.RepoFullName)
	assert.Equal(t, "Go", project.RepoLanguage)
	assert.Equal(t, 100, project.StarsCount)
	assert.Equal(t, 42, project.ForksCount)

	store.AssertExpectations(t)
}

func TestCreateFromRepositoryDefaultsNameToRepoName(t *testing.T) {
	store := new(mocks.ProjectStore)
	store.On("ProjectExistsForRepo", mock.Anything, "user-1", int64(101)).Return(false, nil)
	store.On("CreateProject", mock.Anything, mock.AnythingOfType("*entities.Project")).Return(nil)

	svc := NewProjectService(store)

	project, err := svc.CreateFromRepository(context.Background(), "user-1", sampleRepository(), "", "")
	assert.NoError(t, err)
	assert.Equal(t, "hello-world", project.Name)
}

func TestCreateFromRepositoryDuplicate(t *testing.T) {
	store := new(mocks.ProjectStore)
	store.On("ProjectExistsForRepo", mock.Anything, "user-1", int64(101)).Return(true, nil)

	svc := NewProjectService(store)

	_, err := svc.CreateFromRepository(context.Background(), "user-1", sampleRepository(), "", "")

	assert.ErrorIs(t, err, errcodes.ErrDuplicateProject)
	// No write happens for a duplicate
	store.AssertNotCalled(t, "CreateProject", mock.Anything, mock.Anything)
	store.AssertExpectations(t)
}

func TestCreateFromRepositoryWrapsStorageFailure(t *testing.T) {
	store := new(mocks.ProjectStore)
	store.On("ProjectExistsForRepo", mock.Anything, "user-1", int64(101)).Return(false, errors.New("connection refused"))

	svc := NewProjectService(store)

	_, err := svc.CreateFromRepository(context.Background(), "user-1", sampleRepository(), "", "")

	var persistErr *errcodes.PersistenceError
	assert.True(t, errors.As(err, &persistErr))
}

func TestUpdateProjectRefreshesUpdatedAt(t *testing.T) {
	existing := &entities.Project{
		ID:           7,
		UserID:       "user-1",
		GithubRepoID: 101,
		Name:         "Old name",
		Description:  "Old description",
		UpdatedAt:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	store := new(mocks.ProjectStore)
	store.On("GetProjectByID", mock.Anything, "user-1", uint(7)).Return(existing, nil)
	store.On("SaveProject", mock.Anything, mock.AnythingOfType("*entities.Project")).Return(nil)

	svc := NewProjectService(store)

	project, err := svc.Update(context.Background(), "user-1", 7, "New name", "New description")
	assert.NoError(t, err)
	assert.Equal(t, "New name", project.Name)
	assert.Equal(t, "New description", project.Description)
	assert.True(t, project.UpdatedAt.After(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))

	store.AssertExpectations(t)
}

func TestUpdateAbsentProject(t *testing.T) {
	store := new(mocks.ProjectStore)
	store.On("GetProjectByID", mock.Anything, "user-1", uint(7)).Return(nil, nil)

	svc := NewProjectService(store)

	project, err := svc.Update(context.Background(), "user-1", 7, "New name", "")
	assert.NoError(t, err)
	assert.Nil(t, project)
}

func TestDeleteProjectWrapsStorageFailure(t *testing.T) {
	store := new(mocks.ProjectStore)
	store.On("DeleteProject", mock.Anything, "user-1", uint(7)).Return(errors.New("connection refused"))

	svc := NewProjectService(store)

	err := svc.Delete(context.Background(), "user-1", 7)

	var persistErr *errcodes.PersistenceError
	assert.True(t, errors.As(err, &persistErr))
}
