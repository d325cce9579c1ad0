package list_venues

import (
	"context"

	"github.com/ElizarovAleksey/Banketam.net/internal/service/bookings/models"
)

type BookingService interface {
	GetVenues(ctx context.Context) ([]models.VenueResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
