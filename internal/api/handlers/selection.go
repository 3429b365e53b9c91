package handlers

import (
	"fmt"
	"time"

	"github.com/salaluna/offer-service/internal/domain"
	"github.com/salaluna/offer-service/pkg/types"
)

// AddOnPayload is one requested add-on line on the wire
type AddOnPayload struct {
	ServiceID         int64    `json:"serviceId"`
	Quantity          int      `json:"quantity"`
	UnitPriceOverride *float64 `json:"unitPriceOverride,omitempty"`
}

// SelectionPayload is the wire form of a selection, shared by the preview,
// resolve, step-validation and create endpoints
type SelectionPayload struct {
	VenueID           int64            `json:"venueId"` // -1 = external venue
	ExternalLocation  string           `json:"externalLocation,omitempty"`
	PackageID         int64            `json:"packageId,omitempty"`
	EventDate         string           `json:"eventDate,omitempty"` // "2026-09-12"
	StartTime         string           `json:"startTime,omitempty"` // "20:00"
	EndTime           string           `json:"endTime,omitempty"`   // "01:00"
	GuestCount        int              `json:"guestCount,omitempty"`
	CapacityConfirmed bool             `json:"capacityConfirmed,omitempty"`
	SeasonOverrideID  *int64           `json:"seasonOverrideId,omitempty"`
	BasePriceOverride *float64         `json:"basePriceOverride,omitempty"`
	GroupChoices      map[string]int64 `json:"groupChoices,omitempty"`
	AddOns            []AddOnPayload   `json:"addOns,omitempty"`
	Discount          float64          `json:"discount,omitempty"`
	Notes             *string          `json:"notes,omitempty"`
}

// ToDomainInput parses the payload into a selection input for the client
func (p *SelectionPayload) ToDomainInput(clientID int64) (domain.SelectionInput, error) {
	in := domain.SelectionInput{
		ClientID:          clientID,
		VenueID:           p.VenueID,
		ExternalLocation:  p.ExternalLocation,
		PackageID:         p.PackageID,
		GuestCount:        p.GuestCount,
		CapacityConfirmed: p.CapacityConfirmed,
		SeasonOverrideID:  p.SeasonOverrideID,
		BasePriceOverride: p.BasePriceOverride,
		Discount:          p.Discount,
		Notes:             p.Notes,
	}

	if p.EventDate != "" {
		date, err := time.Parse(domain.DateFormat, p.EventDate)
		if err != nil {
			return domain.SelectionInput{}, fmt.Errorf("invalid eventDate: %w", err)
		}
		in.EventDate = date
	}
	if p.StartTime != "" {
		start, err := types.NewTimeStringFromString(p.StartTime)
		if err != nil {
			return domain.SelectionInput{}, fmt.Errorf("invalid startTime: %w", err)
		}
		in.StartTime = start
	}
	if p.EndTime != "" {
		end, err := types.NewTimeStringFromString(p.EndTime)
		if err != nil {
			return domain.SelectionInput{}, fmt.Errorf("invalid endTime: %w", err)
		}
		in.EndTime = end
	}

	if len(p.GroupChoices) > 0 {
		in.GroupChoices = make(map[domain.ExclusivityGroup]int64, len(p.GroupChoices))
		for group, id := range p.GroupChoices {
			in.GroupChoices[domain.ExclusivityGroup(group)] = id
		}
	}

	if len(p.AddOns) > 0 {
		in.AddOns = make([]domain.AddOnInput, 0, len(p.AddOns))
		for _, addOn := range p.AddOns {
			quantity := addOn.Quantity
			if quantity == 0 {
				quantity = 1
			}
			in.AddOns = append(in.AddOns, domain.AddOnInput{
				ServiceID:         addOn.ServiceID,
				Quantity:          quantity,
				UnitPriceOverride: addOn.UnitPriceOverride,
			})
		}
	}

	return in, nil
}
