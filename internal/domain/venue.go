package domain

// VenueType represents the kind of banquet venue
type VenueType string

const (
	VenueHall          VenueType = "hall"
	VenueRestaurant    VenueType = "restaurant"
	VenueSummerTerrace VenueType = "summer_terrace"
	VenueClosedTerrace VenueType = "closed_terrace"
)

// Venue represents a bookable banquet venue
// Venues are managed by an out-of-band admin process and are read-only
// from the booking flow's perspective
type Venue struct {
	ID          int64
	Name        string
	Type        VenueType
	Address     string
	Capacity    int
	Description string
}

// ValidVenueType reports whether t is one of the known venue types
func ValidVenueType(t VenueType) bool {
	switch t {
	case VenueHall, VenueRestaurant, VenueSummerTerrace, VenueClosedTerrace:
		return true
	}
	return false
}
