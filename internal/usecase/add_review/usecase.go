package add_review

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ElizarovAleksey/Banketam.net/internal/domain"
	bookingRepo "github.com/ElizarovAleksey/Banketam.net/internal/infra/storage/booking"
	reviewRepo "github.com/ElizarovAleksey/Banketam.net/internal/infra/storage/review"
)

// UseCase use case добавления отзыва на завершенный банкет
type UseCase struct {
	bookingRepo  BookingRepository
	reviewRepo   ReviewRepository
	timeProvider TimeProvider
	logger       Logger
}

// RealTimeProvider источник текущего времени по умолчанию
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	reviewRepo ReviewRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		reviewRepo:   reviewRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case добавления отзыва.
// Отзыв может оставить только владелец заявки, только на завершенный
// банкет и только один раз. Гонку одновременных вставок закрывает
// уникальный индекс по booking_id на уровне БД.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AddReview: user=%d, booking=%d, rating=%d", req.UserID, req.BookingID, req.Rating)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AddReview: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем заявку
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("AddReview: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("AddReview: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 3. Отзыв может оставить только владелец заявки
	if booking.UserID != req.UserID {
		uc.logger.Warn("AddReview: user=%d is not the owner of booking id=%d", req.UserID, req.BookingID)
		return nil, ErrAccessDenied
	}

	// 4. Банкет должен быть завершен
	if !booking.CanBeReviewed() {
		uc.logger.Warn("AddReview: booking id=%d has status=%s, review not allowed",
			req.BookingID, booking.Status)
		return nil, ErrBookingNotCompleted
	}

	// 5. Явная проверка существования отзыва
	exists, err := uc.reviewRepo.ExistsForBooking(ctx, req.BookingID)
	if err != nil {
		uc.logger.Error("AddReview: failed to check existing review for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to check existing review: %v", ErrInternal, err)
	}
	if exists {
		uc.logger.Warn("AddReview: booking id=%d already reviewed", req.BookingID)
		return nil, ErrAlreadyReviewed
	}

	// 6. Создаем отзыв; при одновременной вставке уникальный индекс
	//    вернет ErrReviewExists и вторая попытка не пройдет
	review := &domain.Review{
		UserID:    req.UserID,
		BookingID: req.BookingID,
		Rating:    req.Rating,
		Text:      req.Text,
		CreatedAt: uc.timeProvider.Now(),
	}

	created, err := uc.reviewRepo.Create(ctx, review)
	if err != nil {
		if errors.Is(err, reviewRepo.ErrReviewExists) {
			uc.logger.Warn("AddReview: concurrent review detected for booking id=%d", req.BookingID)
			return nil, ErrAlreadyReviewed
		}
		uc.logger.Error("AddReview: failed to create review for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to create review: %v", ErrInternal, err)
	}

	uc.logger.Info("AddReview: successfully created review id=%d for booking id=%d", created.ID, req.BookingID)

	return &Response{
		ID:        created.ID,
		BookingID: created.BookingID,
		UserID:    created.UserID,
		Rating:    created.Rating,
		Text:      created.Text,
		CreatedAt: created.CreatedAt,
	}, nil
}

// GetForm возвращает данные для формы отзыва: состояние заявки и
// возможность оставить отзыв (для GET варианта маршрута)
func (uc *UseCase) GetForm(ctx context.Context, bookingID, userID int64) (*FormResponse, error) {
	booking, err := uc.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if booking.UserID != userID {
		return nil, ErrAccessDenied
	}

	exists, err := uc.reviewRepo.ExistsForBooking(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to check existing review: %v", ErrInternal, err)
	}

	return &FormResponse{
		BookingID:     booking.ID,
		Status:        string(booking.Status),
		StartDateTime: booking.StartDateTime,
		CanReview:     booking.CanBeReviewed() && !exists,
		AlreadyHas:    exists,
	}, nil
}
