package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	allowed := [][2]BookingStatus{
		{BookingPending, BookingConfirmed},
		{BookingPending, BookingCancelled},
		{BookingConfirmed, BookingCompleted},
		{BookingConfirmed, BookingCancelled},
	}
	for _, tc := range allowed {
		assert.True(t, CanTransition(tc[0], tc[1]), "%s -> %s should be allowed", tc[0], tc[1])
	}

	denied := [][2]BookingStatus{
		{BookingPending, BookingCompleted},
		{BookingCancelled, BookingPending},
		{BookingCancelled, BookingConfirmed},
		{BookingCompleted, BookingCancelled},
		{BookingCompleted, BookingConfirmed},
		{BookingConfirmed, BookingPending},
	}
	for _, tc := range denied {
		assert.False(t, CanTransition(tc[0], tc[1]), "%s -> %s should be denied", tc[0], tc[1])
	}
}

func TestValidBookingStatus(t *testing.T) {
	assert.True(t, ValidBookingStatus(BookingPending))
	assert.True(t, ValidBookingStatus(BookingCompleted))
	assert.False(t, ValidBookingStatus("shipped"))
	assert.False(t, ValidBookingStatus(""))
}
