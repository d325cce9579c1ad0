package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBookingStatus(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected BookingStatus
		ok       bool
	}{
		{name: "new", raw: "new", expected: StatusNew, ok: true},
		{name: "confirmed", raw: "confirmed", expected: StatusConfirmed, ok: true},
		{name: "completed", raw: "completed", expected: StatusCompleted, ok: true},
		{name: "unknown value", raw: "cancelled", ok: false},
		{name: "empty", raw: "", ok: false},
		{name: "wrong case", raw: "New", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, ok := ParseBookingStatus(tt.raw)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, status)
			}
		})
	}
}

func TestParsePaymentMethod(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected PaymentMethod
		ok       bool
	}{
		{name: "card", raw: "card", expected: PaymentCard, ok: true},
		{name: "cash", raw: "cash", expected: PaymentCash, ok: true},
		{name: "transfer", raw: "transfer", expected: PaymentTransfer, ok: true},
		{name: "unknown value", raw: "crypto", ok: false},
		{name: "empty", raw: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method, ok := ParsePaymentMethod(tt.raw)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, method)
			}
		})
	}
}

func TestCanTransition(t *testing.T) {
	known := []BookingStatus{StatusNew, StatusConfirmed, StatusCompleted}

	// Граф переходов свободный: любой известный статус в любой известный,
	// включая "откат" завершенной заявки
	for _, from := range known {
		for _, to := range known {
			assert.True(t, CanTransition(from, to), "%s -> %s", from, to)
		}
	}

	assert.False(t, CanTransition(StatusNew, BookingStatus("cancelled")))
	assert.False(t, CanTransition(BookingStatus("draft"), StatusConfirmed))
	assert.False(t, CanTransition("", StatusNew))
}

func TestCanBeReviewed(t *testing.T) {
	assert.False(t, (&Booking{Status: StatusNew}).CanBeReviewed())
	assert.False(t, (&Booking{Status: StatusConfirmed}).CanBeReviewed())
	assert.True(t, (&Booking{Status: StatusCompleted}).CanBeReviewed())
}
