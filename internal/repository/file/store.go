package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"coursebot/internal/domain"

	"go.uber.org/zap"
)

// Store persists the purchase-state map as a single JSON object file.
// JSON object keys are stringified user ids, normalized back to int64
// on load. Every mutation rewrites the whole file through a temp file
// and rename, so readers never observe a torn write; a mutex serializes
// concurrent mutations so no update is lost.
type Store struct {
	path   string
	logger *zap.Logger

	mu    sync.Mutex
	users map[int64]*domain.UserRecord
}

// New creates a store backed by path, loading any existing state.
// A missing or unreadable file is not fatal: the store starts empty
// and logs a warning.
func New(path string, logger *zap.Logger) *Store {
	s := &Store{
		path:   path,
		logger: logger,
		users:  make(map[int64]*domain.UserRecord),
	}
	s.load()
	return s
}

// load reads the entire persisted state into memory. Fails soft.
func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("Failed to read state file, starting empty",
				zap.String("path", s.path),
				zap.Error(err),
			)
		}
		return
	}

	var raw map[string]*domain.UserRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		s.logger.Warn("State file is malformed, starting empty",
			zap.String("path", s.path),
			zap.Error(err),
		)
		return
	}

	for key, rec := range raw {
		userID, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			s.logger.Warn("Skipping state entry with non-numeric key",
				zap.String("key", key),
			)
			continue
		}
		rec.UserID = userID
		s.users[userID] = rec
	}
}

// save serializes the whole map and atomically replaces the state file.
// Callers must hold s.mu.
func (s *Store) save() error {
	raw := make(map[string]*domain.UserRecord, len(s.users))
	for userID, rec := range s.users {
		raw[strconv.FormatInt(userID, 10)] = rec
	}

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".state-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp state file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write temp state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp state file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace state file: %w", err)
	}

	return nil
}

// Get returns a copy of the record for userID, or nil if none exists
func (s *Store) Get(userID int64) (*domain.UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.users[userID]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

// Put inserts or replaces the record and persists the whole map
func (s *Store) Put(rec *domain.UserRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *rec
	s.users[rec.UserID] = &cp
	return s.save()
}

// Delete removes the record for userID and persists
func (s *Store) Delete(userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[userID]; !ok {
		return nil
	}
	delete(s.users, userID)
	return s.save()
}

// All returns a copy of every stored record
func (s *Store) All() (map[int64]*domain.UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[int64]*domain.UserRecord, len(s.users))
	for userID, rec := range s.users {
		cp := *rec
		out[userID] = &cp
	}
	return out, nil
}

// DeleteStale removes records not updated since cutoff
func (s *Store) DeleteStale(cutoff time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for userID, rec := range s.users {
		if rec.UpdatedAt.Before(cutoff) {
			delete(s.users, userID)
			removed++
		}
	}
	if removed == 0 {
		return 0, nil
	}
	return removed, s.save()
}
