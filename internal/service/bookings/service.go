package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/ElizarovAleksey/Banketam.net/internal/domain"
	bookingRepo "github.com/ElizarovAleksey/Banketam.net/internal/infra/storage/booking"
	venueRepo "github.com/ElizarovAleksey/Banketam.net/internal/infra/storage/venue"
	"github.com/ElizarovAleksey/Banketam.net/internal/service/bookings/models"
)

// Service сервис для работы с заявками на бронирование
type Service struct {
	bookingRepo BookingRepository
	venueRepo   VenueRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса заявок
func NewService(bookingRepo BookingRepository, venueRepo VenueRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		venueRepo:   venueRepo,
		logger:      logger,
	}
}

// Create создает заявку на бронирование со статусом "new".
// Дата начала: RFC 3339 или строгий "DD.MM.YYYY" (время 18:00),
// любой другой формат - ErrInvalidStartDate.
func (s *Service) Create(ctx context.Context, userID int64, req *models.CreateBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Create: user=%d venue=%d startDate=%s payment=%s",
		userID, req.VenueID, req.StartDate, req.PaymentMethod)

	startDateTime, err := models.ParseStartDate(req.StartDate)
	if err != nil {
		s.logger.Warn("Create: invalid start date %q for user=%d", req.StartDate, userID)
		return nil, fmt.Errorf("%w: %q", ErrInvalidStartDate, req.StartDate)
	}

	paymentMethod, ok := domain.ParsePaymentMethod(req.PaymentMethod)
	if !ok {
		s.logger.Warn("Create: invalid payment method %q for user=%d", req.PaymentMethod, userID)
		return nil, ErrInvalidPaymentMethod
	}

	venue, err := s.venueRepo.GetByID(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			s.logger.Warn("Create: venue id=%d not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		s.logger.Error("Create: failed to get venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: Create - get venue: %v", ErrInternal, err)
	}

	booking := &domain.Booking{
		UserID:        userID,
		VenueID:       venue.ID,
		StartDateTime: startDateTime,
		PaymentMethod: paymentMethod,
		Status:        domain.StatusNew,
	}

	created, err := s.bookingRepo.Create(ctx, booking)
	if err != nil {
		s.logger.Error("Create: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created booking id=%d for user=%d", created.ID, userID)

	resp := models.FromDomainBooking(&domain.BookingWithRelations{
		Booking: *created,
		Venue: domain.VenueSummary{
			ID:       venue.ID,
			Name:     venue.Name,
			Type:     venue.Type,
			Address:  venue.Address,
			Capacity: venue.Capacity,
		},
	})
	// В ответе на создание данные пользователя не нужны, он и есть автор
	resp.User = nil

	return &resp, nil
}

// GetUserBookings получает заявки пользователя для личного кабинета
func (s *Service) GetUserBookings(ctx context.Context, userID int64) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d", userID)

	bookings, err := s.bookingRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: fetched %d bookings for user=%d", len(bookings), userID)
	return &models.BookingListResponse{
		Bookings: models.FromDomainBookingList(bookings),
	}, nil
}

// GetVenues получает список помещений для формы создания заявки
func (s *Service) GetVenues(ctx context.Context) ([]models.VenueResponse, error) {
	venues, err := s.venueRepo.List(ctx)
	if err != nil {
		s.logger.Error("GetVenues: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetVenues - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainVenueList(venues), nil
}

// GetAdminBookings получает страницу заявок для админ-панели.
// Доступно только администратору. Некорректные значения фильтров,
// сортировки и страницы молча заменяются значениями по умолчанию.
func (s *Service) GetAdminBookings(ctx context.Context, actingUser *domain.User, query *models.AdminListQuery) (*models.AdminBookingListResponse, error) {
	if !actingUser.CanManageBookings() {
		s.logger.Warn("GetAdminBookings: access denied for user=%d", actingUser.ID)
		return nil, ErrAccessDenied
	}

	filter := query.ToDomainFilter()

	s.logger.Info("GetAdminBookings: user=%d page=%d order=%q status=%v venue=%v",
		actingUser.ID, filter.Page, filter.Order, filter.Status, filter.VenueID)

	bookings, total, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("GetAdminBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAdminBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAdminBookings: fetched %d of %d bookings", len(bookings), total)
	return &models.AdminBookingListResponse{
		Bookings: models.FromDomainBookingList(bookings),
		Meta:     models.NewPageMeta(filter.Page, total),
	}, nil
}

// UpdateStatus переводит заявку в новый статус.
// Доступно только администратору; граф переходов намеренно свободный
// (любой статус из любого), проверка изолирована в domain.CanTransition.
func (s *Service) UpdateStatus(ctx context.Context, actingUser *domain.User, bookingID int64, newStatusRaw string) error {
	if !actingUser.CanManageBookings() {
		s.logger.Warn("UpdateStatus: access denied for user=%d on booking id=%d", actingUser.ID, bookingID)
		return ErrAccessDenied
	}

	newStatus, ok := domain.ParseBookingStatus(newStatusRaw)
	if !ok {
		s.logger.Warn("UpdateStatus: invalid status %q for booking id=%d", newStatusRaw, bookingID)
		return ErrInvalidStatus
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if !domain.CanTransition(booking.Status, newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s rejected for booking id=%d",
			booking.Status, newStatus, bookingID)
		return ErrInvalidStatus
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	// Доставка уведомлений вне зоны ответственности сервиса,
	// здесь только фиксируем факт для пользователя
	s.logger.Info("UpdateStatus: notifying user=%d: booking id=%d is now %q",
		booking.UserID, bookingID, newStatus)

	return nil
}
