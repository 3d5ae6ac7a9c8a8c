package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"coursebot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPaymentEvent_Completed(t *testing.T) {
	tests := []struct {
		name     string
		event    string
		expected bool
	}{
		{
			name:     "succeeded",
			event:    "payment.succeeded",
			expected: true,
		},
		{
			name:     "completed",
			event:    "payment.completed",
			expected: true,
		},
		{
			name:     "mixed case",
			event:    "Payment.Succeeded",
			expected: true,
		},
		{
			name:     "canceled",
			event:    "payment.canceled",
			expected: false,
		},
		{
			name:     "empty",
			event:    "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := PaymentEvent{Event: tt.event}
			assert.Equal(t, tt.expected, ev.Completed())
		})
	}
}

func TestFulfillmentService_HandlePaymentEvent(t *testing.T) {
	ev := PaymentEvent{
		Event:  "payment.completed",
		Email:  "a@b.com",
		Course: "physics",
		ChatID: 42,
	}

	t.Run("successful fulfillment", func(t *testing.T) {
		mockRepo := new(testutil.MockUserRepository)
		mockGranter := new(testutil.MockGranter)
		mockNotifier := new(testutil.MockNotifier)

		mockGranter.On("Grant", mock.Anything, "a@b.com", "physics").Return(true)
		mockNotifier.On("SendText", int64(42), mock.MatchedBy(func(text string) bool {
			return strings.Contains(text, "PHYSICS")
		})).Return(nil)
		mockRepo.On("Delete", int64(42)).Return(nil)

		service := NewFulfillmentService(mockRepo, mockGranter, mockNotifier, testutil.NewTestLogger())

		handled := service.HandlePaymentEvent(context.Background(), ev)

		assert.True(t, handled)
		mockGranter.AssertExpectations(t)
		mockNotifier.AssertExpectations(t)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unrecognized event does nothing", func(t *testing.T) {
		mockRepo := new(testutil.MockUserRepository)
		mockGranter := new(testutil.MockGranter)
		mockNotifier := new(testutil.MockNotifier)

		service := NewFulfillmentService(mockRepo, mockGranter, mockNotifier, testutil.NewTestLogger())

		handled := service.HandlePaymentEvent(context.Background(), PaymentEvent{Event: "payment.canceled", ChatID: 42})

		assert.False(t, handled)
		mockGranter.AssertNotCalled(t, "Grant", mock.Anything, mock.Anything, mock.Anything)
		mockNotifier.AssertNotCalled(t, "SendText", mock.Anything, mock.Anything)
	})

	t.Run("failed grant sends no message", func(t *testing.T) {
		mockRepo := new(testutil.MockUserRepository)
		mockGranter := new(testutil.MockGranter)
		mockNotifier := new(testutil.MockNotifier)

		mockGranter.On("Grant", mock.Anything, "a@b.com", "physics").Return(false)

		service := NewFulfillmentService(mockRepo, mockGranter, mockNotifier, testutil.NewTestLogger())

		handled := service.HandlePaymentEvent(context.Background(), ev)

		assert.False(t, handled)
		mockNotifier.AssertNotCalled(t, "SendText", mock.Anything, mock.Anything)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything)
	})

	t.Run("send failure still fulfills", func(t *testing.T) {
		mockRepo := new(testutil.MockUserRepository)
		mockGranter := new(testutil.MockGranter)
		mockNotifier := new(testutil.MockNotifier)

		mockGranter.On("Grant", mock.Anything, "a@b.com", "physics").Return(true)
		mockNotifier.On("SendText", int64(42), mock.Anything).Return(fmt.Errorf("chat not found"))
		mockRepo.On("Delete", int64(42)).Return(nil)

		service := NewFulfillmentService(mockRepo, mockGranter, mockNotifier, testutil.NewTestLogger())

		handled := service.HandlePaymentEvent(context.Background(), ev)

		assert.True(t, handled)
		mockRepo.AssertExpectations(t)
	})
}
