package postgres

import (
	"database/sql"
	"time"

	"coursebot/internal/domain"
)

// UserRepo implements repository.UserRepository on PostgreSQL
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Get returns the record for userID, or nil if none exists
func (r *UserRepo) Get(userID int64) (*domain.UserRecord, error) {
	var (
		rec   domain.UserRecord
		email sql.NullString
	)
	query := `SELECT course, status, email, updated_at FROM users WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&rec.Course, &rec.Status, &email, &rec.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rec.UserID = userID
	rec.Email = email.String
	return &rec, nil
}

// Put inserts or replaces the record for its user id
func (r *UserRepo) Put(rec *domain.UserRecord) error {
	query := `
		INSERT INTO users (user_id, course, status, email, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5)
		ON CONFLICT (user_id)
		DO UPDATE SET course = $2, status = $3, email = NULLIF($4, ''), updated_at = $5
	`
	_, err := r.db.Exec(query, rec.UserID, rec.Course, rec.Status, rec.Email, rec.UpdatedAt)
	return err
}

// Delete removes the record for userID
func (r *UserRepo) Delete(userID int64) error {
	query := `DELETE FROM users WHERE user_id = $1`
	_, err := r.db.Exec(query, userID)
	return err
}

// All returns every stored record keyed by user id
func (r *UserRepo) All() (map[int64]*domain.UserRecord, error) {
	query := `SELECT user_id, course, status, email, updated_at FROM users`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int64]*domain.UserRecord)
	for rows.Next() {
		var (
			rec   domain.UserRecord
			email sql.NullString
		)
		if err := rows.Scan(&rec.UserID, &rec.Course, &rec.Status, &email, &rec.UpdatedAt); err != nil {
			return nil, err
		}
		rec.Email = email.String
		out[rec.UserID] = &rec
	}
	return out, rows.Err()
}

// DeleteStale removes records not updated since cutoff
func (r *UserRepo) DeleteStale(cutoff time.Time) (int, error) {
	query := `DELETE FROM users WHERE updated_at < $1`
	res, err := r.db.Exec(query, cutoff)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}
