package domain

import "time"

// OfferStatus represents the lifecycle state of a persisted offer
type OfferStatus string

const (
	OfferStatusDraft     OfferStatus = "draft"
	OfferStatusSubmitted OfferStatus = "submitted"
	OfferStatusDiscarded OfferStatus = "discarded"
)

// OfferAddOn is a persisted add-on line with the service name and applied
// unit price denormalized for history, so later catalog changes don't rewrite
// old offers
type OfferAddOn struct {
	ServiceID         int64
	ServiceName       string
	Quantity          int
	UnitPrice         float64
	UnitPriceOverride *float64
}

// Offer is a persisted offer record: a selection plus its frozen breakdown
type Offer struct {
	ID        int64
	ClientID  int64
	Status    OfferStatus
	Selection Selection
	AddOns    []OfferAddOn
	Breakdown PriceBreakdown
	// PriceConfirmed reports whether the remote pricing mirror confirmed the
	// breakdown; false means the locally computed totals are advisory
	PriceConfirmed bool
	SubmittedAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsDraft reports whether the offer can still be edited
func (o *Offer) IsDraft() bool {
	return o.Status == OfferStatusDraft
}

// CanBeSubmitted reports whether the offer is in a submittable state
func (o *Offer) CanBeSubmitted() bool {
	return o.Status == OfferStatusDraft
}

// CanBeDiscarded reports whether the offer can be discarded
func (o *Offer) CanBeDiscarded() bool {
	return o.Status == OfferStatusDraft
}

// DenormalizeAddOns freezes the selection's add-on lines against the catalog,
// capturing service names and the unit prices actually applied
func DenormalizeAddOns(sel *Selection, cat *Catalog) ([]OfferAddOn, error) {
	out := make([]OfferAddOn, 0, len(sel.AddOns))
	for _, line := range sel.AddOns {
		svc, err := cat.ServiceByID(line.ServiceID)
		if err != nil {
			return nil, err
		}
		unit := svc.BasePrice
		if line.UnitPriceOverride != nil {
			unit = *line.UnitPriceOverride
		}
		out = append(out, OfferAddOn{
			ServiceID:         line.ServiceID,
			ServiceName:       svc.Name,
			Quantity:          line.Quantity,
			UnitPrice:         unit,
			UnitPriceOverride: line.UnitPriceOverride,
		})
	}
	return out, nil
}
