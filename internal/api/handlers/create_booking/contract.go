package create_booking

import (
	"context"

	"github.com/ElizarovAleksey/Banketam.net/internal/service/bookings/models"
)

type BookingService interface {
	Create(ctx context.Context, userID int64, req *models.CreateBookingRequest) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
