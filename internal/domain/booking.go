package domain

import "time"

// BookingStatus represents the status of a booking request
type BookingStatus string

const (
	StatusNew       BookingStatus = "new"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
)

// PaymentMethod represents how the user intends to pay
type PaymentMethod string

const (
	PaymentCard     PaymentMethod = "card"
	PaymentCash     PaymentMethod = "cash"
	PaymentTransfer PaymentMethod = "transfer"
)

// Booking represents a user's request to use a venue at a given date-time
type Booking struct {
	ID            int64
	UserID        int64
	VenueID       int64
	StartDateTime time.Time
	PaymentMethod PaymentMethod
	Status        BookingStatus
	CreatedAt     time.Time
}

// IsCompleted returns true if the banquet has taken place
func (b *Booking) IsCompleted() bool {
	return b.Status == StatusCompleted
}

// CanBeReviewed returns true if the booking is in a state that allows
// leaving a review
func (b *Booking) CanBeReviewed() bool {
	return b.IsCompleted()
}

// ParseBookingStatus validates a raw status value
func ParseBookingStatus(raw string) (BookingStatus, bool) {
	s := BookingStatus(raw)
	switch s {
	case StatusNew, StatusConfirmed, StatusCompleted:
		return s, true
	}
	return "", false
}

// ParsePaymentMethod validates a raw payment method value
func ParsePaymentMethod(raw string) (PaymentMethod, bool) {
	m := PaymentMethod(raw)
	switch m {
	case PaymentCard, PaymentCash, PaymentTransfer:
		return m, true
	}
	return "", false
}

// CanTransition reports whether a booking may move from one status to
// another. The status graph is deliberately permissive: the administrator
// may set any status from any status. Kept in one place so the graph can
// be tightened later without touching callers.
func CanTransition(from, to BookingStatus) bool {
	_, okFrom := ParseBookingStatus(string(from))
	_, okTo := ParseBookingStatus(string(to))
	return okFrom && okTo
}

// BookingListFilter фильтр для админского списка бронирований
type BookingListFilter struct {
	Status  *BookingStatus // Фильтр по статусу (опционально)
	VenueID *int64         // Фильтр по помещению (опционально)
	Order   BookingOrder   // Сортировка (всегда из allow-list)
	Page    int            // Номер страницы, начиная с 1
}

// BookingOrder сортировка списка бронирований, только из allow-list
type BookingOrder string

const (
	OrderCreatedAtDesc BookingOrder = "created_at DESC"
	OrderCreatedAtAsc  BookingOrder = "created_at ASC"
	OrderStartDesc     BookingOrder = "start_datetime DESC"
	OrderStartAsc      BookingOrder = "start_datetime ASC"
	OrderStatusDesc    BookingOrder = "status DESC"
	OrderStatusAsc     BookingOrder = "status ASC"
)

// BookingWithRelations бронирование с данными пользователя и помещения
// для админского списка (загружаются одним запросом, без N+1)
type BookingWithRelations struct {
	Booking
	User  UserSummary
	Venue VenueSummary
}

// UserSummary краткие данные пользователя для списков
type UserSummary struct {
	ID       int64
	Username string
	FullName string
	Phone    string
}

// VenueSummary краткие данные помещения для списков
type VenueSummary struct {
	ID       int64
	Name     string
	Type     VenueType
	Address  string
	Capacity int
}
