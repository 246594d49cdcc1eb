package db

import (
	"context"
	"errors"

	"github.com/just-nibble/github-link/internal/core/domain/entities"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ConnectionStore defines an interface for database operations on
// github connections
type ConnectionStore interface {
	UpsertConnection(ctx context.Context, conn *entities.Connection) error
	GetConnectionByUserID(ctx context.Context, userID string) (*entities.Connection, error)
	DeleteConnectionByUserID(ctx context.Context, userID string) error
}

// GormConnectionStore is a GORM-based implementation of ConnectionStore
type GormConnectionStore struct {
	db *gorm.DB
}

// NewGormConnectionStore initializes a new GormConnectionStore
func NewGormConnectionStore(db *gorm.DB) *GormConnectionStore {
	return &GormConnectionStore{db: db}
}

// UpsertConnection inserts the connection, replacing an existing row for
// the same user. At most one connection exists per user.
func (s *GormConnectionStore) UpsertConnection(ctx context.Context, conn *entities.Connection) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(conn).Error
}

// GetConnectionByUserID looks up the connection for a user. A missing row
// is a normal absent result, reported as (nil, nil), not an error.
func (s *GormConnectionStore) GetConnectionByUserID(ctx context.Context, userID string) (*entities.Connection, error) {
	var conn entities.Connection
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&conn).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &conn, nil
}

// DeleteConnectionByUserID removes the connection for a user. Deleting a
// user with no connection is a no-op.
func (s *GormConnectionStore) DeleteConnectionByUserID(ctx context.Context, userID string) error {
	return s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&entities.Connection{}).Error
}
