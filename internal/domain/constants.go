package domain

import "github.com/salaluna/offer-service/pkg/types"

// Time and date formats
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Legal schedule bounds. Events may not start before 10:00, and an event
// running past midnight must end by 02:00 of the following day.
const (
	EarliestEventStart = types.TimeString("10:00")
	LatestWrappedEnd   = types.TimeString("02:00")
)

// VenueExternal is the sentinel venue id for events held outside the
// company's own venues. It forces the Custom package class and waives
// venue-specific pricing.
const VenueExternal int64 = -1

// Business validation constants
const (
	MinGuestCount  = 1
	MaxNotesLength = 500
)
