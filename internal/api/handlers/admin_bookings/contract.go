package admin_bookings

import (
	"context"

	"github.com/ElizarovAleksey/Banketam.net/internal/domain"
	"github.com/ElizarovAleksey/Banketam.net/internal/service/bookings/models"
)

type BookingService interface {
	GetAdminBookings(ctx context.Context, actingUser *domain.User, query *models.AdminListQuery) (*models.AdminBookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
