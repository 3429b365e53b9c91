package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salaluna/offer-service/pkg/types"
)

func TestValidateSchedule(t *testing.T) {
	tests := []struct {
		name    string
		start   types.TimeString
		end     types.TimeString
		wantErr bool
	}{
		{"same day afternoon", "16:00", "20:00", false},
		{"starts at earliest bound", "10:00", "14:00", false},
		{"wraps to exactly 02:00", "20:00", "02:00", false},
		{"wraps before 02:00", "20:00", "01:00", false},
		{"starts before 10:00", "09:30", "14:00", true},
		{"wrapped end after 02:00", "20:00", "02:30", true},
		{"end equals start", "16:00", "16:00", true},
		{"missing start", "", "20:00", true},
		{"missing end", "16:00", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSchedule(tt.start, tt.end)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrScheduleViolation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEventDurationMinutes(t *testing.T) {
	tests := []struct {
		name  string
		start types.TimeString
		end   types.TimeString
		want  int
	}{
		{"same day", "16:00", "20:00", 240},
		{"wraps past midnight", "20:00", "01:00", 300},
		{"wraps to 02:00", "21:30", "02:00", 270},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EventDurationMinutes(tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequiredExtraHours(t *testing.T) {
	tests := []struct {
		name      string
		start     types.TimeString
		end       types.TimeString
		baseHours int
		want      int
	}{
		{"exactly base duration", "16:00", "20:00", 4, 0},
		{"shorter than base", "16:00", "18:00", 4, 0},
		{"one whole extra hour", "20:00", "01:00", 4, 1},
		{"partial hour rounds up", "16:00", "20:30", 4, 1},
		{"two extra hours wrapped", "20:00", "02:00", 4, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RequiredExtraHours(tt.start, tt.end, tt.baseHours)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckCapacity(t *testing.T) {
	cat := testCatalog()

	sel := testSelection(cat, pkgStandard)
	require.NoError(t, CheckCapacity(sel, cat)) // 120 of 150

	_, err := sel.SetGuestCount(cat, 180)
	require.NoError(t, err)
	assert.ErrorIs(t, CheckCapacity(sel, cat), ErrCapacityNotConfirmed)

	_, err = sel.ConfirmCapacity(cat)
	require.NoError(t, err)
	assert.NoError(t, CheckCapacity(sel, cat))

	// Changing the guest count resets the confirmation
	_, err = sel.SetGuestCount(cat, 200)
	require.NoError(t, err)
	assert.ErrorIs(t, CheckCapacity(sel, cat), ErrCapacityNotConfirmed)
}

func TestCheckCapacity_ExternalVenueHasNoCapacity(t *testing.T) {
	cat := testCatalog()

	sel := NewSelection(7)
	_, err := sel.ChooseExternalVenue(cat, "Hacienda Los Robles")
	require.NoError(t, err)
	_, err = sel.SetGuestCount(cat, 500)
	require.NoError(t, err)

	assert.NoError(t, CheckCapacity(sel, cat))
}
