package models

import (
	"errors"
	"strconv"
	"time"

	"github.com/ElizarovAleksey/Banketam.net/internal/domain"
	"github.com/ElizarovAleksey/Banketam.net/pkg/ptr"
)

var (
	// ErrInvalidStartDate возвращается, когда дата начала не распознана
	ErrInvalidStartDate = errors.New("invalid start date format")
)

// Request модели

// CreateBookingRequest запрос на создание заявки.
// StartDate принимается либо как структурная дата-время (RFC 3339),
// либо как строка "DD.MM.YYYY" - тогда время начала банкета 18:00.
type CreateBookingRequest struct {
	VenueID       int64  `json:"venueId"`
	StartDate     string `json:"startDate"`
	PaymentMethod string `json:"paymentMethod"`
}

// ParseStartDate парсит дату начала банкета.
// Допустимы ровно два формата: RFC 3339 ("2025-12-25T19:30:00Z") и
// строгий "25.12.2025" (дате без времени назначается 18:00).
// Любой другой формат - ошибка валидации.
func ParseStartDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}

	t, err := time.Parse(domain.StartDateFormat, raw)
	if err != nil {
		return time.Time{}, ErrInvalidStartDate
	}

	// Указана только дата - банкет начинается в 18:00
	return time.Date(
		t.Year(), t.Month(), t.Day(),
		domain.DefaultBanquetHour, 0, 0, 0,
		time.UTC,
	), nil
}

// AdminListQuery сырые query параметры админского списка заявок.
// Каждый параметр опционален; некорректные значения молча заменяются
// значением по умолчанию, а не ошибкой (поведение исходной админ-панели).
type AdminListQuery struct {
	Status string
	Venue  string
	Order  string
	Page   string
}

// ToDomainFilter конвертирует query параметры в domain фильтр.
// Каждый параметр проходит через свою parse-or-default функцию с
// централизованным allow-list, в SQL попадают только значения из списка.
func (q *AdminListQuery) ToDomainFilter() domain.BookingListFilter {
	return domain.BookingListFilter{
		Status:  parseStatusFilter(q.Status),
		VenueID: parseVenueFilter(q.Venue),
		Order:   parseOrder(q.Order),
		Page:    parsePage(q.Page),
	}
}

// parseStatusFilter статус из allow-list, иначе фильтр не применяется
func parseStatusFilter(raw string) *domain.BookingStatus {
	if raw == "" {
		return nil
	}
	status, ok := domain.ParseBookingStatus(raw)
	if !ok {
		return nil
	}
	return ptr.Ptr(status)
}

// parseVenueFilter положительный ID помещения, иначе фильтр не применяется
func parseVenueFilter(raw string) *int64 {
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil
	}
	return ptr.Ptr(id)
}

// bookingOrders allow-list сортировок админского списка
var bookingOrders = map[string]domain.BookingOrder{
	"createdAt":      domain.OrderCreatedAtAsc,
	"-createdAt":     domain.OrderCreatedAtDesc,
	"startDateTime":  domain.OrderStartAsc,
	"-startDateTime": domain.OrderStartDesc,
	"status":         domain.OrderStatusAsc,
	"-status":        domain.OrderStatusDesc,
}

// parseOrder сортировка из allow-list, иначе по умолчанию (-createdAt)
func parseOrder(raw string) domain.BookingOrder {
	if order, ok := bookingOrders[raw]; ok {
		return order
	}
	return domain.OrderCreatedAtDesc
}

// parsePage номер страницы начиная с 1, иначе первая страница
func parsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Response модели

// BookingResponse ответ с данными заявки
type BookingResponse struct {
	ID            int64          `json:"id"`
	StartDateTime time.Time      `json:"startDateTime"`
	PaymentMethod string         `json:"paymentMethod"`
	Status        string         `json:"status"`
	CreatedAt     time.Time      `json:"createdAt"`
	User          *UserSummary   `json:"user,omitempty"`
	Venue         *VenueSummary  `json:"venue,omitempty"`
}

// UserSummary краткие данные пользователя в списке заявок
type UserSummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
}

// VenueSummary краткие данные помещения в списке заявок
type VenueSummary struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Address  string `json:"address"`
	Capacity int    `json:"capacity"`
}

// PageMeta метаданные страницы админского списка
type PageMeta struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// NewPageMeta вычисляет метаданные страницы для фиксированного размера
func NewPageMeta(page int, total int64) PageMeta {
	totalPages := int((total + domain.BookingPageSize - 1) / domain.BookingPageSize)
	if totalPages < 1 {
		totalPages = 1
	}

	return PageMeta{
		Page:       page,
		PageSize:   domain.BookingPageSize,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// BookingListResponse список заявок пользователя
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// AdminBookingListResponse страница заявок для админ-панели
type AdminBookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Meta     PageMeta          `json:"meta"`
}

// Методы конвертации

// FromDomainBooking конвертирует заявку со связями в DTO
func FromDomainBooking(b *domain.BookingWithRelations) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		StartDateTime: b.StartDateTime,
		PaymentMethod: string(b.PaymentMethod),
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt,
		User: &UserSummary{
			ID:       b.User.ID,
			Username: b.User.Username,
			FullName: b.User.FullName,
			Phone:    b.User.Phone,
		},
		Venue: &VenueSummary{
			ID:       b.Venue.ID,
			Name:     b.Venue.Name,
			Type:     string(b.Venue.Type),
			Address:  b.Venue.Address,
			Capacity: b.Venue.Capacity,
		},
	}
}

// FromDomainBookingList конвертирует список заявок со связями в DTO
func FromDomainBookingList(bookings []*domain.BookingWithRelations) []BookingResponse {
	resp := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		resp[i] = FromDomainBooking(b)
	}
	return resp
}

// VenueResponse помещение для формы создания заявки
type VenueResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Address     string `json:"address"`
	Capacity    int    `json:"capacity"`
	Description string `json:"description"`
}

// FromDomainVenueList конвертирует список помещений в DTO
func FromDomainVenueList(venues []*domain.Venue) []VenueResponse {
	resp := make([]VenueResponse, len(venues))
	for i, v := range venues {
		resp[i] = VenueResponse{
			ID:          v.ID,
			Name:        v.Name,
			Type:        string(v.Type),
			Address:     v.Address,
			Capacity:    v.Capacity,
			Description: v.Description,
		}
	}
	return resp
}
