package domain

import (
	"fmt"
	"time"
)

// PackageClass selects which exclusivity rule table applies to a package
type PackageClass string

const (
	ClassStandard PackageClass = "standard"
	ClassSpecial  PackageClass = "special"
	ClassCustom   PackageClass = "custom"
	ClassPlatinum PackageClass = "platinum"
	ClassDiamond  PackageClass = "diamond"
	ClassDeluxe   PackageClass = "deluxe"
)

// ExclusivityGroup links mutually-exclusive alternates. Services with
// GroupNone never conflict with anything.
type ExclusivityGroup string

const (
	GroupNone       ExclusivityGroup = ""
	GroupPhotobooth ExclusivityGroup = "photobooth" // 360° ↔ print
	GroupSidra      ExclusivityGroup = "sidra"      // sidra ↔ champagne
	GroupLicor      ExclusivityGroup = "licor"      // básico → premium
	GroupDecoracion ExclusivityGroup = "decoracion" // básica → plus
	GroupFoto       ExclusivityGroup = "foto"       // 3h → 5h
)

// dualAlternativeGroups holds groups whose members are plain alternates with
// no upgrade direction: whichever member is not bundled stays offerable.
var dualAlternativeGroups = map[ExclusivityGroup]bool{
	GroupPhotobooth: true,
	GroupSidra:      true,
}

// IsDualAlternative reports whether the group is a plain two-alternate group
func (g ExclusivityGroup) IsDualAlternative() bool {
	return dualAlternativeGroups[g]
}

// Package is a priced bundle of included services and a base event duration
type Package struct {
	ID                 int64
	Name               string
	Class              PackageClass
	BasePrice          float64
	VenuePrices        map[int64]float64 // per-venue base price overrides
	BaseDurationHours  int
	MinGuests          int
	PricePerExtraGuest float64
	IncludedServiceIDs []int64 // ordered as bundled in the package
}

// BasePriceForVenue returns the venue-specific base price when one exists,
// otherwise the global base price. External venues always use the global price.
func (p *Package) BasePriceForVenue(venueID int64) float64 {
	if venueID == VenueExternal {
		return p.BasePrice
	}
	if price, ok := p.VenuePrices[venueID]; ok {
		return price
	}
	return p.BasePrice
}

// Includes reports whether the service is bundled into the package
func (p *Package) Includes(serviceID int64) bool {
	for _, id := range p.IncludedServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}

// Service is an individually priced item that can be added beyond or instead
// of what a package bundles
type Service struct {
	ID        int64
	Name      string
	Category  string
	BasePrice float64
	Group     ExclusivityGroup
	// GroupTier orders upgrade direction inside tiered groups:
	// 1 = básico / 3h, 2 = premium / plus / 5h. Zero for ungrouped services.
	GroupTier int
	// Repeatable marks the extra-hour service, which is exempt from
	// exclusivity and bounded by the schedule instead
	Repeatable bool
}

// Season is a date-based price adjustment window, membership by month
type Season struct {
	ID         int64
	Name       string
	Months     []time.Month
	Adjustment float64 // additive
}

// ContainsMonth reports whether the month belongs to the season
func (s *Season) ContainsMonth(m time.Month) bool {
	for _, sm := range s.Months {
		if sm == m {
			return true
		}
	}
	return false
}

// Venue is one of the company's own event locations
type Venue struct {
	ID         int64
	Name       string
	Capacity   int
	PackageIDs []int64 // packages offered at this venue
}

// AllowsPackage reports whether the package is offered at the venue
func (v *Venue) AllowsPackage(packageID int64) bool {
	for _, id := range v.PackageIDs {
		if id == packageID {
			return true
		}
	}
	return false
}

// Rates are catalog-supplied tax and service-fee percentages (e.g. 0.07, 0.18)
type Rates struct {
	IVA        float64
	ServiceFee float64
}

// Catalog is the immutable snapshot the engine computes against. It is
// fetched once per editing session and never mutated by the engine.
type Catalog struct {
	Packages map[int64]*Package
	Services map[int64]*Service
	Seasons  map[int64]*Season
	Venues   map[int64]*Venue
	Rates    Rates
}

// PackageByID resolves a package or fails with ErrCatalogInconsistency
func (c *Catalog) PackageByID(id int64) (*Package, error) {
	if p, ok := c.Packages[id]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("%w: package id=%d not in snapshot", ErrCatalogInconsistency, id)
}

// ServiceByID resolves a service or fails with ErrCatalogInconsistency
func (c *Catalog) ServiceByID(id int64) (*Service, error) {
	if s, ok := c.Services[id]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("%w: service id=%d not in snapshot", ErrCatalogInconsistency, id)
}

// SeasonByID resolves a season or fails with ErrCatalogInconsistency
func (c *Catalog) SeasonByID(id int64) (*Season, error) {
	if s, ok := c.Seasons[id]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("%w: season id=%d not in snapshot", ErrCatalogInconsistency, id)
}

// VenueByID resolves a venue or fails with ErrCatalogInconsistency.
// The external-venue sentinel is not a real venue and cannot be resolved.
func (c *Catalog) VenueByID(id int64) (*Venue, error) {
	if v, ok := c.Venues[id]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("%w: venue id=%d not in snapshot", ErrCatalogInconsistency, id)
}

// Validate checks the snapshot's cross-references. A snapshot that bundles,
// prices or offers an unknown id would fail mid-computation, so it is
// rejected before it reaches the engine.
func (c *Catalog) Validate() error {
	for _, p := range c.Packages {
		for _, id := range p.IncludedServiceIDs {
			if _, ok := c.Services[id]; !ok {
				return fmt.Errorf("%w: package %q bundles unknown service id=%d",
					ErrCatalogInconsistency, p.Name, id)
			}
		}
		for venueID := range p.VenuePrices {
			if _, ok := c.Venues[venueID]; !ok {
				return fmt.Errorf("%w: package %q prices unknown venue id=%d",
					ErrCatalogInconsistency, p.Name, venueID)
			}
		}
	}
	for _, v := range c.Venues {
		for _, id := range v.PackageIDs {
			if _, ok := c.Packages[id]; !ok {
				return fmt.Errorf("%w: venue %q offers unknown package id=%d",
					ErrCatalogInconsistency, v.Name, id)
			}
		}
	}
	if c.Rates.IVA < 0 || c.Rates.ServiceFee < 0 {
		return fmt.Errorf("%w: negative rates (iva=%.4f, serviceFee=%.4f)",
			ErrCatalogInconsistency, c.Rates.IVA, c.Rates.ServiceFee)
	}
	return nil
}

// SeasonForDate auto-detects the season active for the event date.
// At most one season is active for a given month; nil when none matches.
func (c *Catalog) SeasonForDate(date time.Time) *Season {
	if date.IsZero() {
		return nil
	}
	for _, s := range c.Seasons {
		if s.ContainsMonth(date.Month()) {
			return s
		}
	}
	return nil
}
