package domain

import (
	"fmt"
	"time"

	"github.com/salaluna/offer-service/pkg/types"
)

// AddOnInput is one requested add-on line in a selection payload
type AddOnInput struct {
	ServiceID         int64
	Quantity          int
	UnitPriceOverride *float64
}

// SelectionInput is the full selection payload as submitted by a caller.
// It is replayed through the mutator methods so every invariant is enforced
// the same way interactive edits are.
type SelectionInput struct {
	ClientID          int64
	VenueID           int64 // VenueExternal for external venues
	ExternalLocation  string
	PackageID         int64
	EventDate         time.Time
	StartTime         types.TimeString
	EndTime           types.TimeString
	GuestCount        int
	CapacityConfirmed bool
	SeasonOverrideID  *int64
	BasePriceOverride *float64
	GroupChoices      map[ExclusivityGroup]int64
	AddOns            []AddOnInput
	Discount          float64
	Notes             *string
}

// BuildSelection replays a selection payload through the engine's edit
// operations in wizard order and returns the resulting draft with its
// breakdown. The first rejected edit aborts the build with its structured
// violation.
func BuildSelection(cat *Catalog, in SelectionInput) (*Selection, *PriceBreakdown, error) {
	if in.ClientID <= 0 {
		return nil, nil, fmt.Errorf("%w: client id is required", ErrInvalidSelection)
	}

	sel := NewSelection(in.ClientID)
	var breakdown *PriceBreakdown
	var err error

	apply := func(fn func() (*PriceBreakdown, error)) error {
		b, err := fn()
		if err != nil {
			return err
		}
		breakdown = b
		return nil
	}

	if in.VenueID == VenueExternal {
		if err = apply(func() (*PriceBreakdown, error) { return sel.ChooseExternalVenue(cat, in.ExternalLocation) }); err != nil {
			return nil, nil, err
		}
	} else if in.VenueID > 0 {
		if err = apply(func() (*PriceBreakdown, error) { return sel.ChooseVenue(cat, in.VenueID) }); err != nil {
			return nil, nil, err
		}
	}

	if !in.EventDate.IsZero() {
		if err = apply(func() (*PriceBreakdown, error) { return sel.SetEventDate(cat, in.EventDate) }); err != nil {
			return nil, nil, err
		}
	}
	if !in.StartTime.IsZero() || !in.EndTime.IsZero() {
		if err = apply(func() (*PriceBreakdown, error) { return sel.SetSchedule(cat, in.StartTime, in.EndTime) }); err != nil {
			return nil, nil, err
		}
	}
	if in.GuestCount != 0 {
		if err = apply(func() (*PriceBreakdown, error) { return sel.SetGuestCount(cat, in.GuestCount) }); err != nil {
			return nil, nil, err
		}
	}

	if in.PackageID != 0 {
		if err = apply(func() (*PriceBreakdown, error) { return sel.ChoosePackage(cat, in.PackageID) }); err != nil {
			return nil, nil, err
		}
	}

	if in.CapacityConfirmed {
		if err = apply(func() (*PriceBreakdown, error) { return sel.ConfirmCapacity(cat) }); err != nil {
			return nil, nil, err
		}
	}
	if in.SeasonOverrideID != nil {
		if err = apply(func() (*PriceBreakdown, error) { return sel.OverrideSeason(cat, *in.SeasonOverrideID) }); err != nil {
			return nil, nil, err
		}
	}
	if in.BasePriceOverride != nil {
		if err = apply(func() (*PriceBreakdown, error) { return sel.OverrideBasePrice(cat, *in.BasePriceOverride) }); err != nil {
			return nil, nil, err
		}
	}

	for group, serviceID := range in.GroupChoices {
		g, id := group, serviceID
		if err = apply(func() (*PriceBreakdown, error) { return sel.ChooseGroupAlternate(cat, g, id) }); err != nil {
			return nil, nil, err
		}
	}

	for _, addOn := range in.AddOns {
		line := addOn
		if line.Quantity < 1 {
			return nil, nil, fmt.Errorf("%w: add-on quantity must be at least 1", ErrInvalidSelection)
		}
		if err = apply(func() (*PriceBreakdown, error) { return sel.AddService(cat, line.ServiceID) }); err != nil {
			return nil, nil, err
		}
		if line.Quantity > 1 {
			if err = apply(func() (*PriceBreakdown, error) {
				return sel.SetAddOnQuantity(cat, line.ServiceID, line.Quantity)
			}); err != nil {
				return nil, nil, err
			}
		}
		if line.UnitPriceOverride != nil {
			if err = apply(func() (*PriceBreakdown, error) {
				return sel.OverrideAddOnPrice(cat, line.ServiceID, line.UnitPriceOverride)
			}); err != nil {
				return nil, nil, err
			}
		}
	}

	if in.Discount != 0 {
		if err = apply(func() (*PriceBreakdown, error) { return sel.SetDiscount(cat, in.Discount) }); err != nil {
			return nil, nil, err
		}
	}
	if in.Notes != nil {
		if err = apply(func() (*PriceBreakdown, error) { return sel.SetNotes(cat, in.Notes) }); err != nil {
			return nil, nil, err
		}
	}

	if breakdown == nil {
		breakdown, err = CalculatePrice(sel, cat)
		if err != nil {
			return nil, nil, err
		}
	}

	return sel, breakdown, nil
}
