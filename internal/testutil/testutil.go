package testutil

import (
	"time"

	"coursebot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestRecord creates a purchase record fixture
func NewTestRecord(userID int64, course domain.Course, status domain.Status) *domain.UserRecord {
	return &domain.UserRecord{
		UserID:    userID,
		Course:    course,
		Status:    status,
		UpdatedAt: time.Now(),
	}
}
