package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrExclusivityViolation is returned when a service selection conflicts
	// with the active package-class rules or an already-bundled alternate
	ErrExclusivityViolation = errors.New("exclusivity violation")

	// ErrScheduleViolation is returned for start/end times outside legal
	// bounds and for extra-hour requests exceeding the required amount
	ErrScheduleViolation = errors.New("schedule violation")

	// ErrCapacityNotConfirmed is returned when the guest count exceeds the
	// venue capacity and the selection has no explicit confirmation
	ErrCapacityNotConfirmed = errors.New("guest count exceeds venue capacity and is not confirmed")

	// ErrCatalogInconsistency is returned when a referenced package, service,
	// season or venue id is absent from the catalog snapshot. This indicates
	// a broken precondition, not a user mistake, and must abort the computation.
	ErrCatalogInconsistency = errors.New("catalog inconsistency")

	// ErrInvalidSelection is returned for structurally invalid edits
	// (negative discount, empty external location label, zero date, ...)
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrGuestCountBelowMinimum is returned when the guest count would fall
	// below the chosen package's minimum
	ErrGuestCountBelowMinimum = errors.New("guest count below package minimum")

	// ErrPackageNotOffered is returned when the chosen package is not offered
	// at the chosen venue (or a non-custom package is chosen for an external venue)
	ErrPackageNotOffered = errors.New("package is not offered at the selected venue")
)

// StepGuardError identifies the first wizard step whose guard does not hold
type StepGuardError struct {
	Step   Step
	Reason string
}

func (e *StepGuardError) Error() string {
	return fmt.Sprintf("step %q guard failed: %s", e.Step, e.Reason)
}
