package service

import (
	"fmt"
	"time"

	"coursebot/internal/domain"
	"coursebot/internal/repository"
)

// Purchase flow errors, distinguished so the handler can pick the right
// user-facing reply
var (
	ErrUnknownCourse = fmt.Errorf("unknown course")
	ErrInvalidEmail  = fmt.Errorf("invalid email address")
	ErrNoPurchase    = fmt.Errorf("no purchase in progress")
)

// PurchaseService drives the conversation-side purchase state machine
type PurchaseService struct {
	repo    repository.UserRepository
	catalog domain.Catalog
}

// NewPurchaseService creates a new purchase service
func NewPurchaseService(repo repository.UserRepository, catalog domain.Catalog) *PurchaseService {
	return &PurchaseService{repo: repo, catalog: catalog}
}

// Catalog returns the course table the service sells from
func (s *PurchaseService) Catalog() domain.Catalog {
	return s.catalog
}

// BeginPurchase starts (or restarts) a purchase for the given course
// token. A known course creates a fresh record in awaiting_payment and
// persists it; an unknown course returns ErrUnknownCourse without
// touching state.
func (s *PurchaseService) BeginPurchase(userID int64, courseToken string) (domain.Course, domain.CourseInfo, error) {
	course, info, ok := s.catalog.Lookup(courseToken)
	if !ok {
		return "", domain.CourseInfo{}, fmt.Errorf("%w: %s", ErrUnknownCourse, courseToken)
	}

	rec := &domain.UserRecord{
		UserID:    userID,
		Course:    course,
		Status:    domain.StatusAwaitingPayment,
		UpdatedAt: time.Now(),
	}
	if err := s.repo.Put(rec); err != nil {
		return "", domain.CourseInfo{}, fmt.Errorf("failed to persist purchase: %w", err)
	}
	return course, info, nil
}

// AwaitingEmail reports whether the user's purchase is waiting for an
// e-mail address. Both awaiting statuses accept one: see the transition
// table.
func (s *PurchaseService) AwaitingEmail(userID int64) bool {
	rec, err := s.repo.Get(userID)
	if err != nil || rec == nil {
		return false
	}
	return rec.Status.CanTransition(domain.StatusPaymentRequested)
}

// SubmitEmail validates and records the user's e-mail address,
// advancing the purchase to payment_requested. An invalid address
// leaves the record untouched and returns ErrInvalidEmail.
func (s *PurchaseService) SubmitEmail(userID int64, email string) error {
	if !domain.ValidEmail(email) {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}

	rec, err := s.repo.Get(userID)
	if err != nil {
		return fmt.Errorf("failed to load purchase: %w", err)
	}
	if rec == nil {
		return ErrNoPurchase
	}

	if err := rec.Transition(domain.StatusPaymentRequested); err != nil {
		return err
	}
	rec.Email = email
	rec.UpdatedAt = time.Now()

	if err := s.repo.Put(rec); err != nil {
		return fmt.Errorf("failed to persist purchase: %w", err)
	}
	return nil
}
