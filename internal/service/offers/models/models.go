package models

import (
	"time"

	"github.com/salaluna/offer-service/internal/domain"
)

// CreateOfferRequest starts a new draft from a (possibly partial) selection
type CreateOfferRequest struct {
	ClientID  int64
	Selection domain.SelectionInput
}

// GetOfferRequest fetches one offer for a client
type GetOfferRequest struct {
	OfferID  int64
	ClientID int64
}

// ListOffersRequest lists a client's offers with an optional status filter
type ListOffersRequest struct {
	ClientID int64
	Status   *string
}

// DiscardOfferRequest discards a draft
type DiscardOfferRequest struct {
	OfferID  int64
	ClientID int64
}

// AddOnView is one persisted add-on line
type AddOnView struct {
	ServiceID         int64    `json:"serviceId"`
	ServiceName       string   `json:"serviceName"`
	Quantity          int      `json:"quantity"`
	UnitPrice         float64  `json:"unitPrice"`
	UnitPriceOverride *float64 `json:"unitPriceOverride,omitempty"`
}

// BreakdownView is the itemized price breakdown of an offer
type BreakdownView struct {
	BasePrice        float64 `json:"basePrice"`
	SeasonAdjustment float64 `json:"seasonAdjustment"`
	GuestSubtotal    float64 `json:"guestSubtotal"`
	AddOnSubtotal    float64 `json:"addOnSubtotal"`
	Subtotal         float64 `json:"subtotal"`
	Discount         float64 `json:"discount"`
	DiscountClamped  bool    `json:"discountClamped"`
	TaxableBase      float64 `json:"taxableBase"`
	Tax              float64 `json:"tax"`
	ServiceFee       float64 `json:"serviceFee"`
	Total            float64 `json:"total"`
}

// OfferResponse is the full view of a persisted offer
type OfferResponse struct {
	ID                int64         `json:"id"`
	ClientID          int64         `json:"clientId"`
	Status            string        `json:"status"`
	VenueID           int64         `json:"venueId"`
	ExternalLocation  string        `json:"externalLocation,omitempty"`
	PackageID         int64         `json:"packageId"`
	EventDate         string        `json:"eventDate,omitempty"`
	StartTime         string        `json:"startTime,omitempty"`
	EndTime           string        `json:"endTime,omitempty"`
	GuestCount        int           `json:"guestCount"`
	CapacityConfirmed bool          `json:"capacityConfirmed"`
	SeasonOverrideID  *int64        `json:"seasonOverrideId,omitempty"`
	BasePriceOverride *float64      `json:"basePriceOverride,omitempty"`
	Discount          float64       `json:"discount"`
	Notes             *string       `json:"notes,omitempty"`
	AddOns            []AddOnView   `json:"addOns"`
	Breakdown         BreakdownView `json:"breakdown"`
	PriceConfirmed    bool          `json:"priceConfirmed"`
	SubmittedAt       *string       `json:"submittedAt,omitempty"`
	CreatedAt         string        `json:"createdAt"`
	UpdatedAt         string        `json:"updatedAt"`
}

// OfferListResponse is a list of offers
type OfferListResponse struct {
	Offers []*OfferResponse `json:"offers"`
	Total  int              `json:"total"`
}

// FromDomainBreakdown converts a breakdown into its view
func FromDomainBreakdown(b *domain.PriceBreakdown) BreakdownView {
	return BreakdownView{
		BasePrice:        b.BasePrice,
		SeasonAdjustment: b.SeasonAdjustment,
		GuestSubtotal:    b.GuestSubtotal,
		AddOnSubtotal:    b.AddOnSubtotal,
		Subtotal:         b.Subtotal,
		Discount:         b.Discount,
		DiscountClamped:  b.DiscountClamped,
		TaxableBase:      b.TaxableBase,
		Tax:              b.Tax,
		ServiceFee:       b.ServiceFee,
		Total:            b.Total,
	}
}

// FromDomainOffer converts a persisted offer into its view
func FromDomainOffer(o *domain.Offer) *OfferResponse {
	resp := &OfferResponse{
		ID:                o.ID,
		ClientID:          o.ClientID,
		Status:            string(o.Status),
		VenueID:           o.Selection.VenueID,
		ExternalLocation:  o.Selection.ExternalLocation,
		PackageID:         o.Selection.PackageID,
		StartTime:         o.Selection.StartTime.String(),
		EndTime:           o.Selection.EndTime.String(),
		GuestCount:        o.Selection.GuestCount,
		CapacityConfirmed: o.Selection.CapacityConfirmed,
		SeasonOverrideID:  o.Selection.SeasonOverrideID,
		BasePriceOverride: o.Selection.BasePriceOverride,
		Discount:          o.Selection.Discount,
		Notes:             o.Selection.Notes,
		Breakdown:         FromDomainBreakdown(&o.Breakdown),
		PriceConfirmed:    o.PriceConfirmed,
		CreatedAt:         o.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         o.UpdatedAt.Format(time.RFC3339),
	}

	if !o.Selection.EventDate.IsZero() {
		resp.EventDate = o.Selection.EventDate.Format(domain.DateFormat)
	}
	if o.SubmittedAt != nil {
		formatted := o.SubmittedAt.Format(time.RFC3339)
		resp.SubmittedAt = &formatted
	}

	resp.AddOns = make([]AddOnView, 0, len(o.AddOns))
	for _, line := range o.AddOns {
		resp.AddOns = append(resp.AddOns, AddOnView{
			ServiceID:         line.ServiceID,
			ServiceName:       line.ServiceName,
			Quantity:          line.Quantity,
			UnitPrice:         line.UnitPrice,
			UnitPriceOverride: line.UnitPriceOverride,
		})
	}

	return resp
}

// FromDomainOfferList converts a list of offers
func FromDomainOfferList(offers []*domain.Offer) *OfferListResponse {
	out := make([]*OfferResponse, 0, len(offers))
	for _, o := range offers {
		out = append(out, FromDomainOffer(o))
	}
	return &OfferListResponse{Offers: out, Total: len(out)}
}

// ToDomainOfferStatus parses a wire status value
func ToDomainOfferStatus(s string) (domain.OfferStatus, error) {
	switch domain.OfferStatus(s) {
	case domain.OfferStatusDraft, domain.OfferStatusSubmitted, domain.OfferStatusDiscarded:
		return domain.OfferStatus(s), nil
	default:
		return "", ErrUnknownStatus
	}
}
