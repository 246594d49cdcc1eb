package mocks

import (
	"context"

	"github.com/just-nibble/github-link/internal/core/domain/entities"
	"github.com/stretchr/testify/mock"
)

// ConnectionStore mock
type ConnectionStore struct {
	mock.Mock
}

func (m *ConnectionStore) UpsertConnection(ctx context.Context, conn *entities.Connection) error {
	args := m.Called(ctx, conn)
	return args.Error(0)
}

func (m *ConnectionStore) GetConnectionByUserID(ctx context.Context, userID string) (*entities.Connection, error) {
	args := m.Called(ctx, userID)
	conn, _ := args.Get(0).(*entities.Connection)
	return conn, args.Error(1)
}

func (m *ConnectionStore) DeleteConnectionByUserID(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
