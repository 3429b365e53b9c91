package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculatePrice_StandardJunePackage(t *testing.T) {
	cat := testCatalog()

	sel := NewSelection(7)
	_, err := sel.ChooseVenue(cat, venueSalaLuna)
	require.NoError(t, err)
	_, err = sel.SetGuestCount(cat, 50)
	require.NoError(t, err)
	_, err = sel.ChoosePackage(cat, pkgStandard)
	require.NoError(t, err)
	b, err := sel.SetEventDate(cat, time.Date(2026, time.June, 13, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, 1000.0, b.BasePrice)
	assert.Equal(t, 200.0, b.SeasonAdjustment)
	assert.Equal(t, 0.0, b.GuestSubtotal)
	assert.Equal(t, 1200.0, b.Subtotal)
	assert.Equal(t, 1200.0, b.TaxableBase)
	assert.InDelta(t, 84.0, b.Tax, 0.001)
	assert.InDelta(t, 216.0, b.ServiceFee, 0.001)
	assert.InDelta(t, 1500.0, b.Total, 0.001)
	assert.False(t, b.DiscountClamped)
}

func TestCalculatePrice_GuestsAboveMinimum(t *testing.T) {
	cat := testCatalog()
	sel := testSelection(cat, pkgStandard)

	b, err := CalculatePrice(sel, cat)
	require.NoError(t, err)

	// 120 guests, 50 included, 20 per extra head
	assert.Equal(t, 1400.0, b.GuestSubtotal)
}

func TestCalculatePrice_VenueSpecificBasePrice(t *testing.T) {
	cat := testCatalog()

	sel := NewSelection(7)
	_, err := sel.ChooseVenue(cat, venueTerraza)
	require.NoError(t, err)
	b, err := sel.ChoosePackage(cat, pkgStandard)
	require.NoError(t, err)

	assert.Equal(t, 900.0, b.BasePrice)
}

func TestCalculatePrice_BasePriceOverrideWins(t *testing.T) {
	cat := testCatalog()
	sel := testSelection(cat, pkgStandard)

	b, err := sel.OverrideBasePrice(cat, 777)
	require.NoError(t, err)

	assert.Equal(t, 777.0, b.BasePrice)
}

func TestCalculatePrice_SeasonOverrideBeatsAutoDetection(t *testing.T) {
	cat := testCatalog()
	sel := testSelection(cat, pkgStandard)

	_, err := sel.SetEventDate(cat, time.Date(2026, time.June, 13, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	b, err := sel.OverrideSeason(cat, seasonBaja)
	require.NoError(t, err)
	assert.Equal(t, -100.0, b.SeasonAdjustment)

	b, err = sel.ClearSeasonOverride(cat)
	require.NoError(t, err)
	assert.Equal(t, 200.0, b.SeasonAdjustment)
}

func TestCalculatePrice_NoSeasonForUnlistedMonth(t *testing.T) {
	cat := testCatalog()
	sel := testSelection(cat, pkgStandard)

	b, err := sel.SetEventDate(cat, time.Date(2026, time.September, 5, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, 0.0, b.SeasonAdjustment)
}

func TestCalculatePrice_AddOnUnitPriceOverride(t *testing.T) {
	cat := testCatalog()
	sel := testSelection(cat, pkgStandard)

	_, err := sel.AddService(cat, svcMariachi)
	require.NoError(t, err)
	b, err := sel.OverrideAddOnPrice(cat, svcMariachi, floatPtr(300))
	require.NoError(t, err)
	assert.Equal(t, 300.0, b.AddOnSubtotal)

	// Clearing the override returns to the catalog price
	b, err = sel.OverrideAddOnPrice(cat, svcMariachi, nil)
	require.NoError(t, err)
	assert.Equal(t, 450.0, b.AddOnSubtotal)
}

func TestCalculatePrice_DiscountClampedToSubtotal(t *testing.T) {
	cat := testCatalog()

	sel := NewSelection(7)
	_, err := sel.ChooseVenue(cat, venueSalaLuna)
	require.NoError(t, err)
	_, err = sel.SetGuestCount(cat, 50)
	require.NoError(t, err)
	_, err = sel.ChoosePackage(cat, pkgStandard)
	require.NoError(t, err)
	_, err = sel.SetEventDate(cat, time.Date(2026, time.June, 13, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	b, err := sel.SetDiscount(cat, 1500)
	require.NoError(t, err)

	assert.Equal(t, 1200.0, b.Subtotal)
	assert.Equal(t, 1200.0, b.Discount)
	assert.True(t, b.DiscountClamped)
	assert.Equal(t, 0.0, b.TaxableBase)
	assert.Equal(t, 0.0, b.Total)
}

func TestCalculatePrice_NoPackagePricesOnlyAddOns(t *testing.T) {
	cat := testCatalog()

	sel := NewSelection(7)
	_, err := sel.AddService(cat, svcMariachi)
	require.NoError(t, err)
	b, err := CalculatePrice(sel, cat)
	require.NoError(t, err)

	assert.Equal(t, 0.0, b.BasePrice)
	assert.Equal(t, 0.0, b.GuestSubtotal)
	assert.Equal(t, 450.0, b.AddOnSubtotal)
	assert.Equal(t, 450.0, b.Subtotal)
}

func TestCalculatePrice_Deterministic(t *testing.T) {
	cat := testCatalog()
	sel := testSelection(cat, pkgPlatinum)

	first, err := CalculatePrice(sel, cat)
	require.NoError(t, err)
	second, err := CalculatePrice(sel, cat)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
