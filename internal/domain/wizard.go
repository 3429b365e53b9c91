package domain

import (
	"fmt"
	"time"
)

// Step is one stage of the offer wizard. Navigation is linear with free
// backward movement; forward movement and jumps are gated by guards.
type Step int

const (
	StepClientInfo Step = iota + 1
	StepEventDetails
	StepPackageAndSeason
	StepAddOns
	StepDiscount
	StepSubmitted
)

func (s Step) String() string {
	switch s {
	case StepClientInfo:
		return "client_info"
	case StepEventDetails:
		return "event_details"
	case StepPackageAndSeason:
		return "package_and_season"
	case StepAddOns:
		return "add_ons"
	case StepDiscount:
		return "discount"
	case StepSubmitted:
		return "submitted"
	default:
		return "unknown"
	}
}

// StepFromString parses a wire-format step name
func StepFromString(s string) (Step, error) {
	for step := StepClientInfo; step <= StepSubmitted; step++ {
		if step.String() == s {
			return step, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown step %q", ErrInvalidSelection, s)
}

// guardFailure builds the structured failure for one step
func guardFailure(step Step, reason string) error {
	return &StepGuardError{Step: step, Reason: reason}
}

// StepGuard checks whether the guard of a single step holds for the
// selection. The add-on and discount stages are optional and always pass.
func StepGuard(step Step, sel *Selection, cat *Catalog, now time.Time) error {
	switch step {
	case StepClientInfo:
		if sel.ClientID <= 0 {
			return guardFailure(step, "a client must be chosen")
		}

	case StepEventDetails:
		if sel.EventDate.IsZero() {
			return guardFailure(step, "event date is required")
		}
		if dateOnly(sel.EventDate).Before(dateOnly(now)) {
			return guardFailure(step, "event date is in the past")
		}
		if sel.GuestCount < MinGuestCount {
			return guardFailure(step, "guest count must be at least 1")
		}
		if sel.StartTime.IsZero() || sel.EndTime.IsZero() {
			return guardFailure(step, "start and end time are required")
		}
		if err := ValidateSchedule(sel.StartTime, sel.EndTime); err != nil {
			return guardFailure(step, err.Error())
		}
		if sel.VenueID == 0 {
			return guardFailure(step, "a venue must be chosen")
		}
		if sel.VenueID == VenueExternal && sel.ExternalLocation == "" {
			return guardFailure(step, "external venue requires a location label")
		}

	case StepPackageAndSeason:
		if sel.PackageID == 0 {
			return guardFailure(step, "a package must be chosen")
		}
		pkg, err := cat.PackageByID(sel.PackageID)
		if err != nil {
			return err
		}
		if sel.VenueID == VenueExternal && pkg.Class != ClassCustom {
			return guardFailure(step, "external venues only allow custom packages")
		}

	case StepAddOns, StepDiscount:
		// optional stages

	case StepSubmitted:
		return CanSubmit(sel, cat, now)
	}

	return nil
}

// CanJump reports whether a direct jump to the target step is permitted:
// all guards of the preceding steps must currently hold. The first failing
// step is identified in the returned StepGuardError.
func CanJump(target Step, sel *Selection, cat *Catalog, now time.Time) error {
	for step := StepClientInfo; step < target && step < StepSubmitted; step++ {
		if err := StepGuard(step, sel, cat, now); err != nil {
			return err
		}
	}
	return nil
}

// CanSubmit is the final-submit predicate: the client, event-details and
// package guards must all hold, independent of the current step
func CanSubmit(sel *Selection, cat *Catalog, now time.Time) error {
	for _, step := range []Step{StepClientInfo, StepEventDetails, StepPackageAndSeason} {
		if err := StepGuard(step, sel, cat, now); err != nil {
			return err
		}
	}
	return nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
