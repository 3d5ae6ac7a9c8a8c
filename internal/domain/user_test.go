package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_CanTransition(t *testing.T) {
	tests := []struct {
		name     string
		from     Status
		to       Status
		expected bool
	}{
		{
			name:     "awaiting payment to awaiting email",
			from:     StatusAwaitingPayment,
			to:       StatusAwaitingEmail,
			expected: true,
		},
		{
			name:     "awaiting payment to payment requested",
			from:     StatusAwaitingPayment,
			to:       StatusPaymentRequested,
			expected: true,
		},
		{
			name:     "awaiting email to payment requested",
			from:     StatusAwaitingEmail,
			to:       StatusPaymentRequested,
			expected: true,
		},
		{
			name:     "payment requested is terminal",
			from:     StatusPaymentRequested,
			to:       StatusAwaitingEmail,
			expected: false,
		},
		{
			name:     "no backwards transition",
			from:     StatusAwaitingEmail,
			to:       StatusAwaitingPayment,
			expected: false,
		},
		{
			name:     "unknown status transitions nowhere",
			from:     Status("granted"),
			to:       StatusAwaitingPayment,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.from.CanTransition(tt.to))
		})
	}
}

func TestStatus_Valid(t *testing.T) {
	assert.True(t, StatusAwaitingPayment.Valid())
	assert.True(t, StatusAwaitingEmail.Valid())
	assert.True(t, StatusPaymentRequested.Valid())
	assert.False(t, Status("granted").Valid())
	assert.False(t, Status("").Valid())
}

func TestUserRecord_Transition(t *testing.T) {
	rec := &UserRecord{UserID: 42, Course: CoursePhysics, Status: StatusAwaitingPayment}

	err := rec.Transition(StatusPaymentRequested)
	assert.NoError(t, err)
	assert.Equal(t, StatusPaymentRequested, rec.Status)

	err = rec.Transition(StatusAwaitingEmail)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, StatusPaymentRequested, rec.Status, "status must not change on rejected transition")
}

func TestValidEmail(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{
			name:     "plain address",
			input:    "a@b.com",
			expected: true,
		},
		{
			name:     "subdomain",
			input:    "student@mail.example.org",
			expected: true,
		},
		{
			name:     "plus tag",
			input:    "me+notes@example.co",
			expected: true,
		},
		{
			name:     "missing at sign",
			input:    "not-an-email",
			expected: false,
		},
		{
			name:     "missing tld dot",
			input:    "a@b",
			expected: false,
		},
		{
			name:     "contains whitespace",
			input:    "a b@c.com",
			expected: false,
		},
		{
			name:     "empty",
			input:    "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidEmail(tt.input))
		})
	}
}
