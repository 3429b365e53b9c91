package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("20:00")
	require.NoError(t, err)
	assert.Equal(t, "20:00", ts.String())

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("8pm")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Minutes(t *testing.T) {
	ts := TimeString("01:30")
	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 90, minutes)
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("10:00").IsBefore("16:00"))
	assert.True(t, TimeString("16:00").IsAfter("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
}

func TestTimeString_AddMinutesWraps(t *testing.T) {
	ts := TimeString("23:30")
	got, err := ts.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("01:00"), got)
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, time.June, 13, 20, 5, 0, 0, time.UTC))
	assert.Equal(t, "20:05", ts.String())
}
