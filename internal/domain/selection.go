package domain

import (
	"fmt"
	"time"

	"github.com/salaluna/offer-service/pkg/types"
)

// AddOnLine is one chosen add-on service with quantity and an optional
// unit-price override
type AddOnLine struct {
	ServiceID         int64
	Quantity          int
	UnitPriceOverride *float64
}

// Selection is the mutable draft of an offer being built or edited. It is
// mutated exclusively through the mutator methods below, never by direct
// field assignment from callers; every mutator re-validates the edit and
// returns the fresh price breakdown.
type Selection struct {
	ClientID          int64
	VenueID           int64 // 0 = not chosen, VenueExternal = external venue
	ExternalLocation  string
	PackageID         int64
	EventDate         time.Time
	StartTime         types.TimeString
	EndTime           types.TimeString
	GuestCount        int
	CapacityConfirmed bool
	SeasonOverrideID  *int64
	BasePriceOverride *float64
	AddOns            []AddOnLine
	GroupChoices      map[ExclusivityGroup]int64
	Discount          float64
	Notes             *string
}

// NewSelection starts an empty draft for a client
func NewSelection(clientID int64) *Selection {
	return &Selection{
		ClientID:     clientID,
		GroupChoices: make(map[ExclusivityGroup]int64),
	}
}

// chosenPackage resolves the selected package, nil when none is chosen yet
func (s *Selection) chosenPackage(cat *Catalog) (*Package, error) {
	if s.PackageID == 0 {
		return nil, nil
	}
	return cat.PackageByID(s.PackageID)
}

// EffectiveClass resolves the package class governing the exclusivity rules.
// External venues always force the custom class.
func (s *Selection) EffectiveClass(cat *Catalog) (PackageClass, error) {
	if s.VenueID == VenueExternal {
		return ClassCustom, nil
	}
	pkg, err := s.chosenPackage(cat)
	if err != nil {
		return "", err
	}
	if pkg == nil {
		return "", nil
	}
	return pkg.Class, nil
}

// addOnLine returns the line for a service, nil when absent
func (s *Selection) addOnLine(serviceID int64) *AddOnLine {
	for i := range s.AddOns {
		if s.AddOns[i].ServiceID == serviceID {
			return &s.AddOns[i]
		}
	}
	return nil
}

// ExtraHourQuantity returns the total quantity of repeatable (extra-hour)
// add-on lines on the selection
func (s *Selection) ExtraHourQuantity(cat *Catalog) (int, error) {
	total := 0
	for _, line := range s.AddOns {
		svc, err := cat.ServiceByID(line.ServiceID)
		if err != nil {
			return 0, err
		}
		if svc.Repeatable {
			total += line.Quantity
		}
	}
	return total, nil
}

// ChoosePackage selects a package, resetting add-ons and group choices that
// belonged to the previous one
func (s *Selection) ChoosePackage(cat *Catalog, packageID int64) (*PriceBreakdown, error) {
	pkg, err := cat.PackageByID(packageID)
	if err != nil {
		return nil, err
	}

	if s.VenueID == VenueExternal && pkg.Class != ClassCustom {
		return nil, fmt.Errorf("%w: external venues only allow custom packages, %q is %s",
			ErrPackageNotOffered, pkg.Name, pkg.Class)
	}
	if s.VenueID > 0 {
		venue, err := cat.VenueByID(s.VenueID)
		if err != nil {
			return nil, err
		}
		if !venue.AllowsPackage(packageID) {
			return nil, fmt.Errorf("%w: %q at venue %q", ErrPackageNotOffered, pkg.Name, venue.Name)
		}
	}
	if s.GuestCount > 0 && s.GuestCount < pkg.MinGuests {
		return nil, fmt.Errorf("%w: %d guests, package %q requires at least %d",
			ErrGuestCountBelowMinimum, s.GuestCount, pkg.Name, pkg.MinGuests)
	}

	choices, err := DefaultGroupChoices(pkg, cat)
	if err != nil {
		return nil, err
	}

	s.PackageID = packageID
	s.AddOns = nil
	s.BasePriceOverride = nil
	s.GroupChoices = choices

	return CalculatePrice(s, cat)
}

// ChooseVenue selects one of the company's venues
func (s *Selection) ChooseVenue(cat *Catalog, venueID int64) (*PriceBreakdown, error) {
	venue, err := cat.VenueByID(venueID)
	if err != nil {
		return nil, err
	}
	if s.PackageID != 0 && !venue.AllowsPackage(s.PackageID) {
		return nil, fmt.Errorf("%w: venue %q does not offer the selected package",
			ErrPackageNotOffered, venue.Name)
	}

	s.VenueID = venueID
	s.ExternalLocation = ""
	s.CapacityConfirmed = false

	return CalculatePrice(s, cat)
}

// ChooseExternalVenue marks the event as held outside company venues. The
// custom location label is mandatory and the custom package class becomes
// the only one selectable.
func (s *Selection) ChooseExternalVenue(cat *Catalog, location string) (*PriceBreakdown, error) {
	if location == "" {
		return nil, fmt.Errorf("%w: external venue requires a location label", ErrInvalidSelection)
	}
	if s.PackageID != 0 {
		pkg, err := cat.PackageByID(s.PackageID)
		if err != nil {
			return nil, err
		}
		if pkg.Class != ClassCustom {
			return nil, fmt.Errorf("%w: external venues only allow custom packages, %q is %s",
				ErrPackageNotOffered, pkg.Name, pkg.Class)
		}
	}

	s.VenueID = VenueExternal
	s.ExternalLocation = location
	s.CapacityConfirmed = false

	return CalculatePrice(s, cat)
}

// SetEventDate sets the event date; season auto-detection follows it
func (s *Selection) SetEventDate(cat *Catalog, date time.Time) (*PriceBreakdown, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: event date is required", ErrInvalidSelection)
	}
	s.EventDate = date
	return CalculatePrice(s, cat)
}

// SetSchedule sets start and end time. When the new schedule requires fewer
// extra hours than currently selected, extra-hour lines are clamped down so
// the quantity invariant keeps holding.
func (s *Selection) SetSchedule(cat *Catalog, start, end types.TimeString) (*PriceBreakdown, error) {
	if err := ValidateSchedule(start, end); err != nil {
		return nil, err
	}

	s.StartTime = start
	s.EndTime = end

	if pkg, err := s.chosenPackage(cat); err != nil {
		return nil, err
	} else if pkg != nil {
		required, err := RequiredExtraHours(start, end, pkg.BaseDurationHours)
		if err != nil {
			return nil, err
		}
		if err := s.clampExtraHours(cat, required); err != nil {
			return nil, err
		}
	}

	return CalculatePrice(s, cat)
}

// clampExtraHours trims repeatable lines down to the required quantity
func (s *Selection) clampExtraHours(cat *Catalog, required int) error {
	kept := s.AddOns[:0]
	for _, line := range s.AddOns {
		svc, err := cat.ServiceByID(line.ServiceID)
		if err != nil {
			return err
		}
		if svc.Repeatable {
			if required <= 0 {
				continue
			}
			if line.Quantity > required {
				line.Quantity = required
			}
			required -= line.Quantity
		}
		kept = append(kept, line)
	}
	s.AddOns = kept
	return nil
}

// SetGuestCount sets the guest count. Capacity confirmation is reset so an
// overflow has to be re-confirmed against the new count.
func (s *Selection) SetGuestCount(cat *Catalog, count int) (*PriceBreakdown, error) {
	if count < MinGuestCount {
		return nil, fmt.Errorf("%w: guest count must be at least %d", ErrInvalidSelection, MinGuestCount)
	}
	if pkg, err := s.chosenPackage(cat); err != nil {
		return nil, err
	} else if pkg != nil && count < pkg.MinGuests {
		return nil, fmt.Errorf("%w: %d guests, package %q requires at least %d",
			ErrGuestCountBelowMinimum, count, pkg.Name, pkg.MinGuests)
	}

	s.GuestCount = count
	s.CapacityConfirmed = false

	return CalculatePrice(s, cat)
}

// ConfirmCapacity records the explicit confirmation that the event may exceed
// the venue capacity
func (s *Selection) ConfirmCapacity(cat *Catalog) (*PriceBreakdown, error) {
	s.CapacityConfirmed = true
	return CalculatePrice(s, cat)
}

// OverrideSeason pins the season manually instead of auto-detection
func (s *Selection) OverrideSeason(cat *Catalog, seasonID int64) (*PriceBreakdown, error) {
	if _, err := cat.SeasonByID(seasonID); err != nil {
		return nil, err
	}
	s.SeasonOverrideID = &seasonID
	return CalculatePrice(s, cat)
}

// ClearSeasonOverride returns to auto-detection by event month
func (s *Selection) ClearSeasonOverride(cat *Catalog) (*PriceBreakdown, error) {
	s.SeasonOverrideID = nil
	return CalculatePrice(s, cat)
}

// OverrideBasePrice replaces the package base price for this offer
func (s *Selection) OverrideBasePrice(cat *Catalog, price float64) (*PriceBreakdown, error) {
	if price < 0 {
		return nil, fmt.Errorf("%w: base price override must not be negative", ErrInvalidSelection)
	}
	s.BasePriceOverride = &price
	return CalculatePrice(s, cat)
}

// ChooseGroupAlternate records which alternate of a bundled dual-exclusive
// group counts as "in the package". Add-on lines of that group are dropped,
// since the offerable alternate flips with the choice.
func (s *Selection) ChooseGroupAlternate(cat *Catalog, group ExclusivityGroup, serviceID int64) (*PriceBreakdown, error) {
	if !group.IsDualAlternative() {
		return nil, fmt.Errorf("%w: group %q has no alternate choice", ErrInvalidSelection, group)
	}
	pkg, err := s.chosenPackage(cat)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, fmt.Errorf("%w: a package must be chosen first", ErrInvalidSelection)
	}
	members, err := bundledGroupMembers(pkg, cat, group)
	if err != nil {
		return nil, err
	}
	var chosen *Service
	for _, m := range members {
		if m.ID == serviceID {
			chosen = m
		}
	}
	if chosen == nil {
		return nil, fmt.Errorf("%w: service id=%d is not a bundled member of group %q",
			ErrInvalidSelection, serviceID, group)
	}

	if s.GroupChoices == nil {
		s.GroupChoices = make(map[ExclusivityGroup]int64)
	}
	s.GroupChoices[group] = serviceID

	kept := s.AddOns[:0]
	for _, line := range s.AddOns {
		svc, err := cat.ServiceByID(line.ServiceID)
		if err != nil {
			return nil, err
		}
		if svc.Group != group {
			kept = append(kept, line)
		}
	}
	s.AddOns = kept

	return CalculatePrice(s, cat)
}

// AddService adds one unit of a service after the exclusivity resolver
// allows it. Repeatable and ungrouped services increment their existing line.
func (s *Selection) AddService(cat *Catalog, serviceID int64) (*PriceBreakdown, error) {
	svc, err := cat.ServiceByID(serviceID)
	if err != nil {
		return nil, err
	}

	decision, err := CanAdd(svc, s, cat)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed() {
		return nil, decision.Err()
	}

	if line := s.addOnLine(serviceID); line != nil {
		line.Quantity++
	} else {
		s.AddOns = append(s.AddOns, AddOnLine{ServiceID: serviceID, Quantity: 1})
	}

	return CalculatePrice(s, cat)
}

// SetAddOnQuantity adjusts the quantity of an existing line. Extra-hour lines
// stay bounded by the hours the schedule requires.
func (s *Selection) SetAddOnQuantity(cat *Catalog, serviceID int64, quantity int) (*PriceBreakdown, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", ErrInvalidSelection)
	}
	line := s.addOnLine(serviceID)
	if line == nil {
		return nil, fmt.Errorf("%w: service id=%d is not on the selection", ErrInvalidSelection, serviceID)
	}

	svc, err := cat.ServiceByID(serviceID)
	if err != nil {
		return nil, err
	}
	if svc.Repeatable {
		pkg, err := s.chosenPackage(cat)
		if err != nil {
			return nil, err
		}
		if pkg == nil {
			return nil, fmt.Errorf("%w: a package must be chosen before adding extra hours", ErrScheduleViolation)
		}
		required, err := RequiredExtraHours(s.StartTime, s.EndTime, pkg.BaseDurationHours)
		if err != nil {
			return nil, err
		}
		if quantity > required {
			return nil, fmt.Errorf("%w: schedule requires %d extra hour(s), %d requested",
				ErrScheduleViolation, required, quantity)
		}
	}

	line.Quantity = quantity
	return CalculatePrice(s, cat)
}

// RemoveAddOn removes a line entirely
func (s *Selection) RemoveAddOn(cat *Catalog, serviceID int64) (*PriceBreakdown, error) {
	kept := s.AddOns[:0]
	found := false
	for _, line := range s.AddOns {
		if line.ServiceID == serviceID {
			found = true
			continue
		}
		kept = append(kept, line)
	}
	if !found {
		return nil, fmt.Errorf("%w: service id=%d is not on the selection", ErrInvalidSelection, serviceID)
	}
	s.AddOns = kept
	return CalculatePrice(s, cat)
}

// OverrideAddOnPrice sets or clears a per-line unit price override
func (s *Selection) OverrideAddOnPrice(cat *Catalog, serviceID int64, price *float64) (*PriceBreakdown, error) {
	line := s.addOnLine(serviceID)
	if line == nil {
		return nil, fmt.Errorf("%w: service id=%d is not on the selection", ErrInvalidSelection, serviceID)
	}
	if price != nil && *price < 0 {
		return nil, fmt.Errorf("%w: unit price override must not be negative", ErrInvalidSelection)
	}
	line.UnitPriceOverride = price
	return CalculatePrice(s, cat)
}

// SetDiscount sets the requested discount amount. Overflows beyond the
// subtotal are clamped during calculation and reported on the breakdown.
func (s *Selection) SetDiscount(cat *Catalog, amount float64) (*PriceBreakdown, error) {
	if amount < 0 {
		return nil, fmt.Errorf("%w: discount must not be negative", ErrInvalidSelection)
	}
	s.Discount = amount
	return CalculatePrice(s, cat)
}

// SetNotes attaches free-form notes to the draft
func (s *Selection) SetNotes(cat *Catalog, notes *string) (*PriceBreakdown, error) {
	if notes != nil && len(*notes) > MaxNotesLength {
		return nil, fmt.Errorf("%w: notes longer than %d characters", ErrInvalidSelection, MaxNotesLength)
	}
	s.Notes = notes
	return CalculatePrice(s, cat)
}
