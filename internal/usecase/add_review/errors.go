package add_review

import "errors"

var (
	// ErrBookingNotFound возвращается, когда заявка не найдена
	ErrBookingNotFound = errors.New("add_review: booking not found")

	// ErrAccessDenied возвращается, когда отзыв оставляет не владелец заявки
	ErrAccessDenied = errors.New("add_review: access denied")

	// ErrBookingNotCompleted возвращается, когда банкет еще не завершен
	ErrBookingNotCompleted = errors.New("add_review: booking is not completed")

	// ErrAlreadyReviewed возвращается, когда отзыв на заявку уже существует
	ErrAlreadyReviewed = errors.New("add_review: booking already reviewed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("add_review: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("add_review: internal error")
)
