package testutil

import (
	"context"
	"time"

	"coursebot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Get(userID int64) (*domain.UserRecord, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserRecord), args.Error(1)
}

func (m *MockUserRepository) Put(rec *domain.UserRecord) error {
	args := m.Called(rec)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserRepository) All() (map[int64]*domain.UserRecord, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]*domain.UserRecord), args.Error(1)
}

func (m *MockUserRepository) DeleteStale(cutoff time.Time) (int, error) {
	args := m.Called(cutoff)
	return args.Int(0), args.Error(1)
}

// MockPermissionCreator is a mock for service.PermissionCreator
type MockPermissionCreator struct {
	mock.Mock
}

func (m *MockPermissionCreator) CreateReaderPermission(ctx context.Context, folderID, email string) error {
	args := m.Called(ctx, folderID, email)
	return args.Error(0)
}

// MockGranter is a mock for service.Granter
type MockGranter struct {
	mock.Mock
}

func (m *MockGranter) Grant(ctx context.Context, email, courseToken string) bool {
	args := m.Called(ctx, email, courseToken)
	return args.Bool(0)
}

// MockNotifier is a mock for service.Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendText(chatID int64, text string) error {
	args := m.Called(chatID, text)
	return args.Error(0)
}
