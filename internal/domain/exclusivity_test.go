package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decideFor(t *testing.T, cat *Catalog, sel *Selection, serviceID int64) Decision {
	t.Helper()
	svc, err := cat.ServiceByID(serviceID)
	require.NoError(t, err)
	decision, err := CanAdd(svc, sel, cat)
	require.NoError(t, err)
	return decision
}

func TestCanAdd_TieredUpgradesByClass(t *testing.T) {
	cat := testCatalog()

	tests := []struct {
		name      string
		packageID int64
		serviceID int64
		verdict   Verdict
	}{
		{"standard allows licor upgrade", pkgStandard, svcLicorPremium, VerdictAllowedAsUpgrade},
		{"standard allows decor upgrade", pkgStandard, svcDecorPlus, VerdictAllowedAsUpgrade},
		{"standard allows foto upgrade", pkgStandard, svcFoto5h, VerdictAllowedAsUpgrade},
		{"standard blocks bundled licor", pkgStandard, svcLicorBasico, VerdictBlocked},
		{"platinum allows foto upgrade", pkgPlatinum, svcFoto5h, VerdictAllowedAsUpgrade},
		{"diamond allows licor upgrade", pkgDiamond, svcLicorPremium, VerdictAllowedAsUpgrade},
		{"diamond blocks decor upgrade", pkgDiamond, svcDecorPlus, VerdictBlocked},
		{"diamond allows foto upgrade", pkgDiamond, svcFoto5h, VerdictAllowedAsUpgrade},
		{"diamond hides bundled foto", pkgDiamond, svcFoto3h, VerdictHidden},
		{"deluxe blocks licor upgrade", pkgDeluxe, svcLicorPremium, VerdictBlocked},
		{"deluxe blocks decor upgrade", pkgDeluxe, svcDecorPlus, VerdictBlocked},
		{"deluxe blocks foto upgrade", pkgDeluxe, svcFoto5h, VerdictBlocked},
		{"deluxe hides bundled foto", pkgDeluxe, svcFoto3h, VerdictHidden},
		{"custom blocks licor strictly", pkgCustom, svcLicorPremium, VerdictBlocked},
		{"custom blocks foto strictly", pkgCustom, svcFoto5h, VerdictBlocked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := testSelection(cat, tt.packageID)
			decision := decideFor(t, cat, sel, tt.serviceID)
			assert.Equal(t, tt.verdict, decision.Verdict)
			if !decision.Allowed() {
				assert.NotEmpty(t, decision.Reason)
			}
		})
	}
}

func TestCanAdd_DowngradeNeverPermitted(t *testing.T) {
	cat := testCatalog()

	// A package bundling the higher tier would be needed for a true downgrade;
	// re-adding the bundled lower tier is the observable equivalent here
	sel := testSelection(cat, pkgStandard)
	decision := decideFor(t, cat, sel, svcDecorBasica)
	assert.Equal(t, VerdictBlocked, decision.Verdict)
	assert.Contains(t, decision.Reason, "included in the package")
}

func TestCanAdd_DualAlternativeGroups(t *testing.T) {
	cat := testCatalog()

	// Sidra is bundled: champagne stays offerable, sidra is not re-addable
	sel := testSelection(cat, pkgStandard)
	assert.Equal(t, VerdictAllowed, decideFor(t, cat, sel, svcChampagne).Verdict)
	assert.Equal(t, VerdictBlocked, decideFor(t, cat, sel, svcSidra).Verdict)

	// Photobooth 360° is bundled in platinum: only the print variant is offerable
	sel = testSelection(cat, pkgPlatinum)
	assert.Equal(t, VerdictAllowed, decideFor(t, cat, sel, svcPhotoboothPrint).Verdict)
	assert.Equal(t, VerdictBlocked, decideFor(t, cat, sel, svcPhotobooth360).Verdict)
}

func TestCanAdd_GroupAlternateFlipsOfferability(t *testing.T) {
	cat := testCatalog()
	sel := testSelection(cat, pkgPlatinum)

	_, err := sel.ChooseGroupAlternate(cat, GroupPhotobooth, svcPhotobooth360)
	require.NoError(t, err)
	assert.Equal(t, VerdictAllowed, decideFor(t, cat, sel, svcPhotoboothPrint).Verdict)

	// Only bundled members are valid alternate choices
	_, err = sel.ChooseGroupAlternate(cat, GroupPhotobooth, svcPhotoboothPrint)
	assert.ErrorIs(t, err, ErrInvalidSelection)
}

func TestCanAdd_SameGroupLinesNeverCoexist(t *testing.T) {
	cat := testCatalog()

	// The custom package bundles nothing from the photobooth group, so the
	// first alternate is addable and the second conflicts with it
	sel := testSelection(cat, pkgCustom)
	_, err := sel.AddService(cat, svcPhotobooth360)
	require.NoError(t, err)

	decision := decideFor(t, cat, sel, svcPhotoboothPrint)
	assert.Equal(t, VerdictBlocked, decision.Verdict)
	assert.Equal(t, "Photobooth 360°", decision.ConflictsWith)
}

func TestCanAdd_SpecialLiftsSidraExclusion(t *testing.T) {
	cat := testCatalog()

	// Special: champagne may join even though sidra is bundled, and the added
	// champagne line does not block further sidra-group additions
	sel := testSelection(cat, pkgSpecial)
	_, err := sel.AddService(cat, svcChampagne)
	require.NoError(t, err)

	// The bundled sidra itself is still not re-addable
	decision := decideFor(t, cat, sel, svcSidra)
	assert.Equal(t, VerdictBlocked, decision.Verdict)
	assert.Contains(t, decision.Reason, "included in the package")
}

func TestCanAdd_UngroupedServiceAlwaysAllowed(t *testing.T) {
	cat := testCatalog()

	sel := NewSelection(7)
	assert.Equal(t, VerdictAllowed, decideFor(t, cat, sel, svcMariachi).Verdict)

	sel = testSelection(cat, pkgDeluxe)
	assert.Equal(t, VerdictAllowed, decideFor(t, cat, sel, svcMariachi).Verdict)
}

func TestCanAdd_ExtraHourBoundedBySchedule(t *testing.T) {
	cat := testCatalog()
	sel := testSelection(cat, pkgStandard)

	// No schedule yet: extra hours are not addable
	decision := decideFor(t, cat, sel, svcHoraExtra)
	assert.Equal(t, VerdictBlocked, decision.Verdict)

	// 20:00–01:00 is five hours against a four-hour base: one extra hour
	_, err := sel.SetSchedule(cat, "20:00", "01:00")
	require.NoError(t, err)

	_, err = sel.AddService(cat, svcHoraExtra)
	require.NoError(t, err)

	decision = decideFor(t, cat, sel, svcHoraExtra)
	assert.Equal(t, VerdictBlocked, decision.Verdict)
	assert.Contains(t, decision.Reason, "1 extra hour(s)")
}

func TestServiceStatuses_DerivedListing(t *testing.T) {
	cat := testCatalog()
	sel := testSelection(cat, pkgDiamond)

	statuses, err := ServiceStatuses(sel, cat)
	require.NoError(t, err)
	require.Len(t, statuses, len(cat.Services))

	// Sorted by service id
	for i := 1; i < len(statuses); i++ {
		assert.Less(t, statuses[i-1].ServiceID, statuses[i].ServiceID)
	}

	byID := make(map[int64]ServiceStatus, len(statuses))
	for _, st := range statuses {
		byID[st.ServiceID] = st
	}

	assert.Equal(t, VerdictHidden, byID[svcFoto3h].Verdict)
	assert.Equal(t, VerdictAllowedAsUpgrade, byID[svcFoto5h].Verdict)
	assert.Equal(t, VerdictBlocked, byID[svcDecorPlus].Verdict)
	assert.Equal(t, VerdictAllowed, byID[svcMariachi].Verdict)
}

func TestDefaultGroupChoices_FirstBundledMember(t *testing.T) {
	cat := testCatalog()

	pkg, err := cat.PackageByID(pkgPlatinum)
	require.NoError(t, err)
	choices, err := DefaultGroupChoices(pkg, cat)
	require.NoError(t, err)

	assert.Equal(t, svcPhotobooth360, choices[GroupPhotobooth])
	assert.Equal(t, svcSidra, choices[GroupSidra])
}

func TestActiveAlternates_FollowsExplicitChoice(t *testing.T) {
	cat := testCatalog()
	sel := testSelection(cat, pkgPlatinum)

	alternates, err := ActiveAlternates(sel, cat)
	require.NoError(t, err)
	assert.Equal(t, svcPhotobooth360, alternates[GroupPhotobooth])
	assert.Equal(t, svcSidra, alternates[GroupSidra])
}

func TestDecision_ErrCarriesSentinelAndConflict(t *testing.T) {
	cat := testCatalog()
	sel := testSelection(cat, pkgCustom)

	decision := decideFor(t, cat, sel, svcLicorPremium)
	err := decision.Err()
	assert.ErrorIs(t, err, ErrExclusivityViolation)
	assert.Contains(t, err.Error(), "Licor básico")
}
