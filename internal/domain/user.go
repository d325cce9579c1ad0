package domain

import (
	"regexp"
	"time"
)

// usernamePattern latin letters and digits only, at least 6 characters
var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9]{6,}$`)

// User represents a registered user of the booking site
type User struct {
	ID           int64
	Username     string
	FullName     string
	Email        string
	Phone        string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
}

// CanManageBookings returns true if the user may change booking statuses
// and view the full booking list
func (u *User) CanManageBookings() bool {
	return u.IsAdmin
}

// ValidUsername reports whether the username matches the registration rule:
// at least 6 characters, each an ASCII latin letter or digit
func ValidUsername(username string) bool {
	return usernamePattern.MatchString(username)
}
