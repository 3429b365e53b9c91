package preview_offer

import (
	"github.com/salaluna/offer-service/internal/domain"
)

// Request carries the selection payload to price
type Request struct {
	Selection domain.SelectionInput
}

// Response is the itemized preview of the selection
type Response struct {
	BasePrice          float64
	SeasonAdjustment   float64
	GuestSubtotal      float64
	AddOnSubtotal      float64
	Subtotal           float64
	Discount           float64
	DiscountClamped    bool
	TaxableBase        float64
	Tax                float64
	ServiceFee         float64
	Total              float64
	RequiredExtraHours int
	// CapacityWarning is the advisory capacity message, empty when the guest
	// count fits the venue or was explicitly confirmed
	CapacityWarning string
}
