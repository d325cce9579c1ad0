package bookings

import (
	"context"

	"github.com/ElizarovAleksey/Banketam.net/internal/domain"
)

// BookingRepository интерфейс репозитория заявок
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64) ([]*domain.BookingWithRelations, error)
	List(ctx context.Context, filter domain.BookingListFilter) ([]*domain.BookingWithRelations, int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

// VenueRepository интерфейс репозитория помещений
type VenueRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
	List(ctx context.Context) ([]*domain.Venue, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
