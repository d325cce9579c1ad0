package update_booking_status

import (
	"context"

	"github.com/ElizarovAleksey/Banketam.net/internal/domain"
)

type BookingService interface {
	UpdateStatus(ctx context.Context, actingUser *domain.User, bookingID int64, newStatus string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
