package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ElizarovAleksey/Banketam.net/internal/domain"
	bookingRepo "github.com/ElizarovAleksey/Banketam.net/internal/infra/storage/booking"
	venueRepo "github.com/ElizarovAleksey/Banketam.net/internal/infra/storage/venue"
	"github.com/ElizarovAleksey/Banketam.net/internal/service/bookings/models"
)

// Моки репозиториев с настраиваемым поведением

type mockBookingRepository struct {
	createFunc       func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	getByIDFunc      func(ctx context.Context, id int64) (*domain.Booking, error)
	getByUserIDFunc  func(ctx context.Context, userID int64) ([]*domain.BookingWithRelations, error)
	listFunc         func(ctx context.Context, filter domain.BookingListFilter) ([]*domain.BookingWithRelations, int64, error)
	updateStatusFunc func(ctx context.Context, id int64, status domain.BookingStatus) error
}

func (m *mockBookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	return m.createFunc(ctx, booking)
}

func (m *mockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *mockBookingRepository) GetByUserID(ctx context.Context, userID int64) ([]*domain.BookingWithRelations, error) {
	return m.getByUserIDFunc(ctx, userID)
}

func (m *mockBookingRepository) List(ctx context.Context, filter domain.BookingListFilter) ([]*domain.BookingWithRelations, int64, error) {
	return m.listFunc(ctx, filter)
}

func (m *mockBookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	return m.updateStatusFunc(ctx, id, status)
}

type mockVenueRepository struct {
	getByIDFunc func(ctx context.Context, id int64) (*domain.Venue, error)
	listFunc    func(ctx context.Context) ([]*domain.Venue, error)
}

func (m *mockVenueRepository) GetByID(ctx context.Context, id int64) (*domain.Venue, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *mockVenueRepository) List(ctx context.Context) ([]*domain.Venue, error) {
	return m.listFunc(ctx)
}

type mockLogger struct{}

func (m *mockLogger) Info(format string, v ...interface{})  {}
func (m *mockLogger) Warn(format string, v ...interface{})  {}
func (m *mockLogger) Error(format string, v ...interface{}) {}

var (
	testVenue = &domain.Venue{
		ID:       3,
		Name:     "Большой зал",
		Type:     domain.VenueHall,
		Address:  "ул. Ленина, 26",
		Capacity: 120,
	}

	admin   = &domain.User{ID: 1, Username: "Admin26", IsAdmin: true}
	regular = &domain.User{ID: 42, Username: "ivanov1", IsAdmin: false}
)

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates booking with status new", func(t *testing.T) {
		var saved *domain.Booking

		bookings := &mockBookingRepository{
			createFunc: func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
				saved = booking
				created := *booking
				created.ID = 7
				created.CreatedAt = time.Now()
				return &created, nil
			},
		}
		venues := &mockVenueRepository{
			getByIDFunc: func(ctx context.Context, id int64) (*domain.Venue, error) {
				return testVenue, nil
			},
		}

		service := NewService(bookings, venues, &mockLogger{})

		resp, err := service.Create(ctx, regular.ID, &models.CreateBookingRequest{
			VenueID:       testVenue.ID,
			StartDate:     "25.12.2025",
			PaymentMethod: "card",
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(7), resp.ID)
		assert.Equal(t, "new", resp.Status)
		assert.Nil(t, resp.User)
		assert.Equal(t, testVenue.Name, resp.Venue.Name)

		assert.Equal(t, regular.ID, saved.UserID)
		assert.Equal(t, domain.StatusNew, saved.Status)
		// Дата без времени - банкет в 18:00
		assert.Equal(t,
			time.Date(2025, 12, 25, 18, 0, 0, 0, time.UTC),
			saved.StartDateTime.UTC())
	})

	t.Run("rejects unparseable start date", func(t *testing.T) {
		service := NewService(&mockBookingRepository{}, &mockVenueRepository{}, &mockLogger{})

		_, err := service.Create(ctx, regular.ID, &models.CreateBookingRequest{
			VenueID:       testVenue.ID,
			StartDate:     "2025-12-25",
			PaymentMethod: "card",
		})

		assert.ErrorIs(t, err, ErrInvalidStartDate)
	})

	t.Run("rejects unknown payment method", func(t *testing.T) {
		service := NewService(&mockBookingRepository{}, &mockVenueRepository{}, &mockLogger{})

		_, err := service.Create(ctx, regular.ID, &models.CreateBookingRequest{
			VenueID:       testVenue.ID,
			StartDate:     "25.12.2025",
			PaymentMethod: "crypto",
		})

		assert.ErrorIs(t, err, ErrInvalidPaymentMethod)
	})

	t.Run("rejects missing venue", func(t *testing.T) {
		venues := &mockVenueRepository{
			getByIDFunc: func(ctx context.Context, id int64) (*domain.Venue, error) {
				return nil, venueRepo.ErrVenueNotFound
			},
		}
		service := NewService(&mockBookingRepository{}, venues, &mockLogger{})

		_, err := service.Create(ctx, regular.ID, &models.CreateBookingRequest{
			VenueID:       999,
			StartDate:     "25.12.2025",
			PaymentMethod: "cash",
		})

		assert.ErrorIs(t, err, ErrVenueNotFound)
	})
}

func TestService_GetAdminBookings(t *testing.T) {
	ctx := context.Background()

	t.Run("denies non-admin", func(t *testing.T) {
		service := NewService(&mockBookingRepository{}, &mockVenueRepository{}, &mockLogger{})

		_, err := service.GetAdminBookings(ctx, regular, &models.AdminListQuery{})

		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("returns page with meta", func(t *testing.T) {
		var gotFilter domain.BookingListFilter

		bookings := &mockBookingRepository{
			listFunc: func(ctx context.Context, filter domain.BookingListFilter) ([]*domain.BookingWithRelations, int64, error) {
				gotFilter = filter
				return []*domain.BookingWithRelations{
					{
						Booking: domain.Booking{ID: 11, Status: domain.StatusConfirmed},
						User:    domain.UserSummary{ID: regular.ID, Username: regular.Username},
						Venue:   domain.VenueSummary{ID: testVenue.ID, Name: testVenue.Name},
					},
				}, 25, nil
			},
		}

		service := NewService(bookings, &mockVenueRepository{}, &mockLogger{})

		resp, err := service.GetAdminBookings(ctx, admin, &models.AdminListQuery{
			Status: "confirmed",
			Order:  "-startDateTime",
			Page:   "2",
		})

		assert.NoError(t, err)
		assert.Len(t, resp.Bookings, 1)
		assert.Equal(t, regular.Username, resp.Bookings[0].User.Username)
		assert.Equal(t, 2, resp.Meta.Page)
		assert.Equal(t, int64(25), resp.Meta.Total)
		assert.Equal(t, 3, resp.Meta.TotalPages)
		assert.True(t, resp.Meta.HasNext)
		assert.True(t, resp.Meta.HasPrev)

		assert.Equal(t, domain.OrderStartDesc, gotFilter.Order)
		assert.NotNil(t, gotFilter.Status)
		assert.Equal(t, domain.StatusConfirmed, *gotFilter.Status)
	})
}

func TestService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("denies non-admin", func(t *testing.T) {
		service := NewService(&mockBookingRepository{}, &mockVenueRepository{}, &mockLogger{})

		err := service.UpdateStatus(ctx, regular, 11, "confirmed")

		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		service := NewService(&mockBookingRepository{}, &mockVenueRepository{}, &mockLogger{})

		err := service.UpdateStatus(ctx, admin, 11, "cancelled")

		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("booking not found", func(t *testing.T) {
		bookings := &mockBookingRepository{
			getByIDFunc: func(ctx context.Context, id int64) (*domain.Booking, error) {
				return nil, bookingRepo.ErrBookingNotFound
			},
		}
		service := NewService(bookings, &mockVenueRepository{}, &mockLogger{})

		err := service.UpdateStatus(ctx, admin, 999, "confirmed")

		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("updates status and reports new value", func(t *testing.T) {
		var updatedID int64
		var updatedStatus domain.BookingStatus

		bookings := &mockBookingRepository{
			getByIDFunc: func(ctx context.Context, id int64) (*domain.Booking, error) {
				return &domain.Booking{ID: id, UserID: regular.ID, Status: domain.StatusNew}, nil
			},
			updateStatusFunc: func(ctx context.Context, id int64, status domain.BookingStatus) error {
				updatedID = id
				updatedStatus = status
				return nil
			},
		}
		service := NewService(bookings, &mockVenueRepository{}, &mockLogger{})

		err := service.UpdateStatus(ctx, admin, 11, "completed")

		assert.NoError(t, err)
		assert.Equal(t, int64(11), updatedID)
		assert.Equal(t, domain.StatusCompleted, updatedStatus)
	})

	t.Run("allows moving completed booking back to new", func(t *testing.T) {
		bookings := &mockBookingRepository{
			getByIDFunc: func(ctx context.Context, id int64) (*domain.Booking, error) {
				return &domain.Booking{ID: id, Status: domain.StatusCompleted}, nil
			},
			updateStatusFunc: func(ctx context.Context, id int64, status domain.BookingStatus) error {
				return nil
			},
		}
		service := NewService(bookings, &mockVenueRepository{}, &mockLogger{})

		err := service.UpdateStatus(ctx, admin, 11, "new")

		assert.NoError(t, err)
	})
}
