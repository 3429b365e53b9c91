package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

// completeSelection satisfies every guard up to and including the package step
func completeSelection(t *testing.T, cat *Catalog) *Selection {
	t.Helper()
	sel := NewSelection(7)
	_, err := sel.ChooseVenue(cat, venueSalaLuna)
	require.NoError(t, err)
	_, err = sel.SetEventDate(cat, time.Date(2026, time.June, 13, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = sel.SetSchedule(cat, "16:00", "20:00")
	require.NoError(t, err)
	_, err = sel.SetGuestCount(cat, 120)
	require.NoError(t, err)
	_, err = sel.ChoosePackage(cat, pkgStandard)
	require.NoError(t, err)
	return sel
}

func TestStepFromString(t *testing.T) {
	step, err := StepFromString("package_and_season")
	require.NoError(t, err)
	assert.Equal(t, StepPackageAndSeason, step)

	_, err = StepFromString("nonsense")
	assert.ErrorIs(t, err, ErrInvalidSelection)
}

func TestCanJump_ReportsFirstFailingStep(t *testing.T) {
	cat := testCatalog()

	sel := NewSelection(7)
	err := CanJump(StepAddOns, sel, cat, testNow)

	var guardErr *StepGuardError
	require.ErrorAs(t, err, &guardErr)
	assert.Equal(t, StepEventDetails, guardErr.Step)
	assert.NotEmpty(t, guardErr.Reason)
}

func TestCanJump_AllowedWhenGuardsHold(t *testing.T) {
	cat := testCatalog()
	sel := completeSelection(t, cat)

	assert.NoError(t, CanJump(StepAddOns, sel, cat, testNow))
	assert.NoError(t, CanJump(StepDiscount, sel, cat, testNow))
}

func TestStepGuard_EventDetails(t *testing.T) {
	cat := testCatalog()

	tests := []struct {
		name   string
		mutate func(sel *Selection)
		reason string
	}{
		{"missing date", func(sel *Selection) { sel.EventDate = time.Time{} }, "event date is required"},
		{"date in the past", func(sel *Selection) {
			sel.EventDate = time.Date(2025, time.June, 13, 0, 0, 0, 0, time.UTC)
		}, "event date is in the past"},
		{"missing schedule", func(sel *Selection) { sel.StartTime = ""; sel.EndTime = "" }, "start and end time are required"},
		{"no venue", func(sel *Selection) { sel.VenueID = 0 }, "a venue must be chosen"},
		{"external without label", func(sel *Selection) {
			sel.VenueID = VenueExternal
			sel.ExternalLocation = ""
		}, "external venue requires a location label"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := completeSelection(t, cat)
			tt.mutate(sel)

			err := StepGuard(StepEventDetails, sel, cat, testNow)
			var guardErr *StepGuardError
			require.ErrorAs(t, err, &guardErr)
			assert.Equal(t, StepEventDetails, guardErr.Step)
			assert.Equal(t, tt.reason, guardErr.Reason)
		})
	}
}

func TestStepGuard_ExternalVenueRequiresCustomClass(t *testing.T) {
	cat := testCatalog()

	sel := NewSelection(7)
	_, err := sel.ChooseExternalVenue(cat, "Hacienda Los Robles")
	require.NoError(t, err)
	_, err = sel.SetGuestCount(cat, 40)
	require.NoError(t, err)
	_, err = sel.ChoosePackage(cat, pkgCustom)
	require.NoError(t, err)

	assert.NoError(t, StepGuard(StepPackageAndSeason, sel, cat, testNow))

	// A non-custom package cannot even be chosen for an external venue
	_, err = sel.ChoosePackage(cat, pkgStandard)
	assert.ErrorIs(t, err, ErrPackageNotOffered)
}

func TestStepGuard_OptionalStepsAlwaysPass(t *testing.T) {
	cat := testCatalog()
	sel := NewSelection(7)

	assert.NoError(t, StepGuard(StepAddOns, sel, cat, testNow))
	assert.NoError(t, StepGuard(StepDiscount, sel, cat, testNow))
}

func TestCanSubmit(t *testing.T) {
	cat := testCatalog()

	sel := completeSelection(t, cat)
	assert.NoError(t, CanSubmit(sel, cat, testNow))

	// Dropping the package breaks the submit predicate regardless of step
	sel.PackageID = 0
	err := CanSubmit(sel, cat, testNow)
	var guardErr *StepGuardError
	require.ErrorAs(t, err, &guardErr)
	assert.Equal(t, StepPackageAndSeason, guardErr.Step)
}

func TestStepGuardError_Message(t *testing.T) {
	err := &StepGuardError{Step: StepEventDetails, Reason: "event date is required"}
	assert.Contains(t, err.Error(), "event_details")
	assert.Contains(t, err.Error(), "event date is required")
}
