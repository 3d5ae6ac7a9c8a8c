package repository

import (
	"time"

	"coursebot/internal/domain"
)

// UserRepository defines purchase-state persistence. Implementations:
// a JSON file store (default) and Postgres.
type UserRepository interface {
	// Get returns the record for userID, or nil if none exists
	Get(userID int64) (*domain.UserRecord, error)
	// Put inserts or replaces the record for its user id
	Put(rec *domain.UserRecord) error
	// Delete removes the record for userID; deleting a missing record is not an error
	Delete(userID int64) error
	// All returns every stored record keyed by user id
	All() (map[int64]*domain.UserRecord, error)
	// DeleteStale removes records not updated since cutoff and reports how many
	DeleteStale(cutoff time.Time) (int, error)
}
