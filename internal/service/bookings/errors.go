package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда заявка не найдена
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrVenueNotFound возвращается, когда помещение не найдено
	ErrVenueNotFound = errors.New("bookings: venue not found")

	// ErrInvalidStartDate возвращается, когда дата начала банкета не
	// соответствует ни одному из допустимых форматов
	ErrInvalidStartDate = errors.New("bookings: invalid start date")

	// ErrInvalidPaymentMethod возвращается при неизвестном способе оплаты
	ErrInvalidPaymentMethod = errors.New("bookings: invalid payment method")

	// ErrInvalidStatus возвращается при попытке установить недопустимый статус
	ErrInvalidStatus = errors.New("bookings: invalid booking status")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("bookings: access denied")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)
