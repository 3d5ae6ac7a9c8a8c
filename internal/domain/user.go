package domain

import (
	"fmt"
	"regexp"
	"time"
)

// Status represents where a user is in the purchase flow
type Status string

const (
	StatusAwaitingPayment  Status = "awaiting_payment"
	StatusAwaitingEmail    Status = "awaiting_email"
	StatusPaymentRequested Status = "payment_requested"
)

// ErrInvalidTransition is returned for a status change outside the
// transition table
var ErrInvalidTransition = fmt.Errorf("invalid status transition")

// transitions is the closed set of legal status changes. A buy command
// always creates a fresh record, so it is not modeled as a transition.
// Email submission is legal from either awaiting state: older state
// files contain records parked in awaiting_email.
var transitions = map[Status][]Status{
	StatusAwaitingPayment:  {StatusAwaitingEmail, StatusPaymentRequested},
	StatusAwaitingEmail:    {StatusPaymentRequested},
	StatusPaymentRequested: {},
}

// Valid reports whether s is a known status
func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// CanTransition reports whether moving from s to next is legal
func (s Status) CanTransition(next Status) bool {
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// UserRecord tracks a single in-flight purchase. At most one record
// exists per user; the store is the source of truth.
type UserRecord struct {
	UserID    int64     `json:"-"`
	Course    Course    `json:"course"`
	Status    Status    `json:"status"`
	Email     string    `json:"email,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Transition moves the record to next, rejecting anything outside the
// transition table
func (r *UserRecord) Transition(next Status) error {
	if !r.Status.CanTransition(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, r.Status, next)
	}
	r.Status = next
	return nil
}

// emailRe is deliberately permissive: anything shaped local@domain.tld
// is accepted, the payment gateway re-validates on its side
var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidEmail reports whether s looks like an e-mail address
func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}
