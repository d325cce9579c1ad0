package review

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/ElizarovAleksey/Banketam.net/internal/domain"
	"github.com/ElizarovAleksey/Banketam.net/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки PostgreSQL для нарушения уникального индекса
const pgUniqueViolation = "23505"

// Repository репозиторий для работы с отзывами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория отзывов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает отзыв на заявку.
// Уникальность отзыва (один отзыв на заявку) гарантируется уникальным
// индексом по booking_id: при одновременных вставках вторая получает
// ErrReviewExists, а не второй ряд.
func (r *Repository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	query, args, err := psqlbuilder.Insert("reviews").
		Columns(
			"user_id",
			"booking_id",
			"rating",
			"text",
			"created_at",
		).
		Values(
			review.UserID,
			review.BookingID,
			review.Rating,
			review.Text,
			review.CreatedAt,
		).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	// created_at пишем сами: источник времени создания - вызывающий код
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&review.ID)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrReviewExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return review, nil
}

// ExistsForBooking проверяет, существует ли отзыв на заявку
func (r *Repository) ExistsForBooking(ctx context.Context, bookingID int64) (bool, error) {
	query, args, err := psqlbuilder.Select("1").
		From("reviews").
		Where(squirrel.Eq{"booking_id": bookingID}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsForBooking - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsForBooking - scan result: %v", ErrScanRow, err)
	}

	return true, nil
}
