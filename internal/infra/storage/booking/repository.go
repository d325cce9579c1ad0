package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/ElizarovAleksey/Banketam.net/internal/domain"
	"github.com/ElizarovAleksey/Banketam.net/pkg/psqlbuilder"
)

// bookingColumns колонки заявки с данными пользователя и помещения
// (JOIN, чтобы не делать отдельный запрос на каждую строку списка)
var bookingColumns = []string{
	"b.id",
	"b.user_id",
	"b.venue_id",
	"b.start_datetime",
	"b.payment_method",
	"b.status",
	"b.created_at",
	"u.username",
	"u.full_name",
	"u.phone",
	"v.name",
	"v.type",
	"v.address",
	"v.capacity",
}

// Repository репозиторий для работы с заявками на бронирование
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую заявку на бронирование
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"user_id",
			"venue_id",
			"start_datetime",
			"payment_method",
			"status",
		).
		Values(
			booking.UserID,
			booking.VenueID,
			booking.StartDateTime,
			booking.PaymentMethod,
			booking.Status,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time

	return booking, nil
}

// GetByID получает заявку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"user_id",
		"venue_id",
		"start_datetime",
		"payment_method",
		"status",
		"created_at",
	).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var booking domain.Booking
	var createdAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.VenueID,
		&booking.StartDateTime,
		&booking.PaymentMethod,
		&booking.Status,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	booking.CreatedAt = createdAt.Time

	return &booking, nil
}

// GetByUserID получает заявки пользователя для личного кабинета
// Сортировка - сначала новые
func (r *Repository) GetByUserID(ctx context.Context, userID int64) ([]*domain.BookingWithRelations, error) {
	query, args, err := r.joinedSelect().
		Where(squirrel.Eq{"b.user_id": userID}).
		OrderBy("b.created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// List получает страницу заявок для админ-панели с фильтрацией и сортировкой
// Возвращает заявки страницы и общее число заявок, подходящих под фильтр.
//
// Фильтры и сортировка приходят уже провалидированными против allow-list
// (domain.BookingListFilter), в SQL никогда не попадает сырой пользовательский
// ввод.
func (r *Repository) List(ctx context.Context, filter domain.BookingListFilter) ([]*domain.BookingWithRelations, int64, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	offset := uint64(page-1) * domain.BookingPageSize

	selectBuilder := r.joinedSelect().
		OrderBy("b." + string(filter.Order)).
		Limit(domain.BookingPageSize).
		Offset(offset)

	countBuilder := psqlbuilder.Select("COUNT(*)").From("bookings b")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.status": *filter.Status})
		countBuilder = countBuilder.Where(squirrel.Eq{"b.status": *filter.Status})
	}
	if filter.VenueID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.venue_id": *filter.VenueID})
		countBuilder = countBuilder.Where(squirrel.Eq{"b.venue_id": *filter.VenueID})
	}

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - build count query: %v", ErrBuildQuery, err)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%w: List - execute count: %v", ErrExecQuery, err)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings, err := r.scanBookings(rows)
	if err != nil {
		return nil, 0, err
	}

	return bookings, total, nil
}

// UpdateStatus обновляет статус заявки
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// joinedSelect базовый SELECT заявок с данными пользователя и помещения
func (r *Repository) joinedSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		Join("users u ON u.id = b.user_id").
		Join("venues v ON v.id = b.venue_id")
}

// scanBookings сканирует результаты запроса в слайс заявок
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.BookingWithRelations, error) {
	bookings := make([]*domain.BookingWithRelations, 0)

	for rows.Next() {
		var b domain.BookingWithRelations
		var createdAt sql.NullTime

		err := rows.Scan(
			&b.ID,
			&b.Booking.UserID,
			&b.Booking.VenueID,
			&b.StartDateTime,
			&b.PaymentMethod,
			&b.Status,
			&createdAt,
			&b.User.Username,
			&b.User.FullName,
			&b.User.Phone,
			&b.Venue.Name,
			&b.Venue.Type,
			&b.Venue.Address,
			&b.Venue.Capacity,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		b.CreatedAt = createdAt.Time
		b.User.ID = b.Booking.UserID
		b.Venue.ID = b.Booking.VenueID

		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
