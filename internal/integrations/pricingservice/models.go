package pricingservice

import "github.com/salaluna/offer-service/internal/domain"

// ConfirmRequest mirrors the selection and the locally computed totals for
// server-side recomputation
type ConfirmRequest struct {
	PackageID        int64            `json:"packageId"`
	VenueID          int64            `json:"venueId"`
	ExternalLocation string           `json:"externalLocation,omitempty"`
	EventDate        string           `json:"eventDate"`
	StartTime        string           `json:"startTime"`
	EndTime          string           `json:"endTime"`
	GuestCount       int              `json:"guestCount"`
	SeasonOverrideID *int64           `json:"seasonOverrideId,omitempty"`
	AddOns           []ConfirmAddOn   `json:"addOns"`
	Discount         float64          `json:"discount"`
	LocalBreakdown   ConfirmBreakdown `json:"localBreakdown"`
}

// ConfirmAddOn is one add-on line of the confirmation request
type ConfirmAddOn struct {
	ServiceID         int64    `json:"serviceId"`
	Quantity          int      `json:"quantity"`
	UnitPriceOverride *float64 `json:"unitPriceOverride,omitempty"`
}

// ConfirmBreakdown carries the totals being confirmed
type ConfirmBreakdown struct {
	Subtotal    float64 `json:"subtotal"`
	Discount    float64 `json:"discount"`
	TaxableBase float64 `json:"taxableBase"`
	Tax         float64 `json:"tax"`
	ServiceFee  float64 `json:"serviceFee"`
	Total       float64 `json:"total"`
}

// Confirmation is the authoritative server-side result
type Confirmation struct {
	Confirmed bool    `json:"confirmed"`
	Total     float64 `json:"total"`
	Detail    string  `json:"detail,omitempty"`
}

// NewConfirmRequest builds a confirmation request from a selection and its
// local breakdown
func NewConfirmRequest(sel *domain.Selection, breakdown *domain.PriceBreakdown) *ConfirmRequest {
	addOns := make([]ConfirmAddOn, 0, len(sel.AddOns))
	for _, line := range sel.AddOns {
		addOns = append(addOns, ConfirmAddOn{
			ServiceID:         line.ServiceID,
			Quantity:          line.Quantity,
			UnitPriceOverride: line.UnitPriceOverride,
		})
	}

	return &ConfirmRequest{
		PackageID:        sel.PackageID,
		VenueID:          sel.VenueID,
		ExternalLocation: sel.ExternalLocation,
		EventDate:        sel.EventDate.Format(domain.DateFormat),
		StartTime:        sel.StartTime.String(),
		EndTime:          sel.EndTime.String(),
		GuestCount:       sel.GuestCount,
		SeasonOverrideID: sel.SeasonOverrideID,
		AddOns:           addOns,
		Discount:         sel.Discount,
		LocalBreakdown: ConfirmBreakdown{
			Subtotal:    breakdown.Subtotal,
			Discount:    breakdown.Discount,
			TaxableBase: breakdown.TaxableBase,
			Tax:         breakdown.Tax,
			ServiceFee:  breakdown.ServiceFee,
			Total:       breakdown.Total,
		},
	}
}
