package domain

// Review constraints
const (
	MinRating = 1
	MaxRating = 5
)

// BookingPageSize размер страницы админского списка бронирований (фиксированный)
const BookingPageSize = 10

// DefaultBanquetHour время начала банкета, когда пользователь указал только
// дату без времени (формат DD.MM.YYYY)
const DefaultBanquetHour = 18

// Time format constants
const (
	// StartDateFormat формат даты заявки без времени, "25.12.2025"
	StartDateFormat = "02.01.2006"
)
