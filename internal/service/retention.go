package service

import (
	"time"

	"coursebot/internal/repository"

	"go.uber.org/zap"
)

// RetentionService sweeps purchase records that were never completed.
// Without it the store grows forever: the original system never deleted
// an entry.
type RetentionService struct {
	repo   repository.UserRepository
	ttl    time.Duration
	logger *zap.Logger
}

// NewRetentionService creates a new retention service
func NewRetentionService(repo repository.UserRepository, ttl time.Duration, logger *zap.Logger) *RetentionService {
	return &RetentionService{
		repo:   repo,
		ttl:    ttl,
		logger: logger,
	}
}

// Sweep deletes records untouched for longer than the TTL
func (s *RetentionService) Sweep() error {
	cutoff := time.Now().Add(-s.ttl)

	removed, err := s.repo.DeleteStale(cutoff)
	if err != nil {
		s.logger.Error("Failed to sweep stale records", zap.Error(err))
		return err
	}

	if removed > 0 {
		s.logger.Info("Swept stale purchase records",
			zap.Int("removed", removed),
			zap.Duration("ttl", s.ttl),
		)
	}
	return nil
}
