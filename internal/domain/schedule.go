package domain

import (
	"fmt"

	"github.com/salaluna/offer-service/pkg/types"
)

const minutesPerDay = 24 * 60

// ValidateSchedule checks the legal bounds of an event schedule:
// start no earlier than 10:00, and when the event wraps past midnight the
// wrapped end must be no later than 02:00 of the following day.
func ValidateSchedule(start, end types.TimeString) error {
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("%w: start and end time must be set", ErrScheduleViolation)
	}

	startMin, err := start.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrScheduleViolation, err)
	}
	endMin, err := end.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrScheduleViolation, err)
	}

	earliest, _ := EarliestEventStart.Minutes()
	if startMin < earliest {
		return fmt.Errorf("%w: start %s is before %s", ErrScheduleViolation, start, EarliestEventStart)
	}

	if endMin == startMin {
		return fmt.Errorf("%w: end equals start", ErrScheduleViolation)
	}

	// end < start means the event runs past midnight into the next day
	if endMin < startMin {
		latest, _ := LatestWrappedEnd.Minutes()
		if endMin > latest {
			return fmt.Errorf("%w: end %s is after %s", ErrScheduleViolation, end, LatestWrappedEnd)
		}
	}

	return nil
}

// EventDurationMinutes returns the event length, wrapping past midnight when
// end is earlier in the day than start
func EventDurationMinutes(start, end types.TimeString) (int, error) {
	startMin, err := start.Minutes()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrScheduleViolation, err)
	}
	endMin, err := end.Minutes()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrScheduleViolation, err)
	}

	if endMin > startMin {
		return endMin - startMin, nil
	}
	return minutesPerDay - startMin + endMin, nil
}

// RequiredExtraHours returns how many whole extra hours the schedule needs
// beyond the package base duration, floored at zero. This is the ceiling on
// extra-hour add-on quantity, independent of the 02:00 legal ceiling that
// ValidateSchedule enforces.
func RequiredExtraHours(start, end types.TimeString, baseDurationHours int) (int, error) {
	duration, err := EventDurationMinutes(start, end)
	if err != nil {
		return 0, err
	}

	extra := duration - baseDurationHours*60
	if extra <= 0 {
		return 0, nil
	}
	return (extra + 59) / 60, nil
}

// CheckCapacity performs the advisory guest-count check: exceeding the venue
// capacity is allowed only after an explicit confirmation on the selection.
// External venues have no capacity of their own.
func CheckCapacity(sel *Selection, cat *Catalog) error {
	if sel.VenueID <= 0 || sel.VenueID == VenueExternal {
		return nil
	}
	venue, err := cat.VenueByID(sel.VenueID)
	if err != nil {
		return err
	}
	if sel.GuestCount > venue.Capacity && !sel.CapacityConfirmed {
		return fmt.Errorf("%w: %d guests, venue %q holds %d",
			ErrCapacityNotConfirmed, sel.GuestCount, venue.Name, venue.Capacity)
	}
	return nil
}
