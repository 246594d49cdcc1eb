package db

import (
	"context"
	"errors"

	"github.com/just-nibble/github-link/internal/core/domain/entities"
	"gorm.io/gorm"
)

// ProjectStore defines an interface for database operations on projects
type ProjectStore interface {
	CreateProject(ctx context.Context, project *entities.Project) error
	ProjectExistsForRepo(ctx context.Context, userID string, githubRepoID int64) (bool, error)
	GetProjectByID(ctx context.Context, userID string, projectID uint) (*entities.Project, error)
	GetProjectsByUserID(ctx context.Context, userID string) ([]entities.Project, error)
	SaveProject(ctx context.Context, project *entities.Project) error
	DeleteProject(ctx context.Context, userID string, projectID uint) error
}

// GormProjectStore is a GORM-based implementation of ProjectStore
type GormProjectStore struct {
	db *gorm.DB
}

// NewGormProjectStore initializes a new GormProjectStore
func NewGormProjectStore(db *gorm.DB) *GormProjectStore {
	return &GormProjectStore{db: db}
}

func (s *GormProjectStore) CreateProject(ctx context.Context, project *entities.Project) error {
	return s.db.WithContext(ctx).Create(project).Error
}

// ProjectExistsForRepo reports whether the user already has a project
// pointing at the given repository
func (s *GormProjectStore) ProjectExistsForRepo(ctx context.Context, userID string, githubRepoID int64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&entities.Project{}).
		Where("user_id = ? AND github_repo_id = ?", userID, githubRepoID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetProjectByID looks up a project scoped to its owner. A missing row is
// reported as (nil, nil).
func (s *GormProjectStore) GetProjectByID(ctx context.Context, userID string, projectID uint) (*entities.Project, error) {
	var project entities.Project
	err := s.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, projectID).First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &project, nil
}

func (s *GormProjectStore) GetProjectsByUserID(ctx context.Context, userID string) ([]entities.Project, error) {
	var projects []entities.Project
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *GormProjectStore) SaveProject(ctx context.Context, project *entities.Project) error {
	return s.db.WithContext(ctx).Save(project).Error
}

func (s *GormProjectStore) DeleteProject(ctx context.Context, userID string, projectID uint) error {
	return s.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, projectID).Delete(&entities.Project{}).Error
}
