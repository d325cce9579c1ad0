package domain

import "time"

// Review represents a one-time, post-completion rating tied 1:1 to a booking
type Review struct {
	ID        int64
	UserID    int64
	BookingID int64
	Rating    int
	Text      string
	CreatedAt time.Time
}

// ValidRating reports whether the rating is within the allowed range
func ValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}
