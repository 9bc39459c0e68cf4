package domain

import "time"

// Field names of the tour draft, shared by the form gate and the HTTP surface
const (
	FieldTitle         = "title"
	FieldSlug          = "slug"
	FieldImage         = "image"
	FieldBadge         = "badge"
	FieldBadgeColor    = "badgeColor"
	FieldStartDate     = "startDate"
	FieldEndDate       = "endDate"
	FieldDuration      = "duration"
	FieldCategory      = "category"
	FieldPrice         = "price"
	FieldOriginalPrice = "originalPrice"
	FieldDiscount      = "discount"
	FieldTotalSeats    = "totalSeats"
	FieldSeatsTaken    = "seatsTaken"
	FieldDestinations  = "destinations"
	FieldFacilities    = "facilities"
	FieldHighlights    = "highlights"
	FieldItinerary     = "itinerary"
	FieldIncluded      = "included"
	FieldExcluded      = "excluded"
)

// Business validation constants
const (
	MinTitleLength = 3
	MaxTitleLength = 200
	MinSlugLength  = 3
	MaxSlugLength  = 100
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ParseDate parses a calendar date in the draft's wire format
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, s)
}

// Default cache windows
const (
	DefaultStaleAfterSeconds = 300 // 5 минут: запись становится кандидатом на обновление
	DefaultGCAfterSeconds    = 600 // 10 минут: неиспользуемая запись вычищается
)

// EntityType represents a cacheable entity family of the tour backend
type EntityType string

const (
	EntityTour     EntityType = "tours"
	EntityCustomer EntityType = "customers"
	EntityBooking  EntityType = "bookings"
	EntityUser     EntityType = "users"
	EntityImage    EntityType = "images"
)
