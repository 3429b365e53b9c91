package preview_offer

import (
	"github.com/salaluna/offer-service/internal/api/handlers"
	previewOffer "github.com/salaluna/offer-service/internal/usecase/preview_offer"
)

// PreviewRequest HTTP request model
type PreviewRequest struct {
	Selection handlers.SelectionPayload `json:"selection"`
}

// PreviewResponse HTTP response model
type PreviewResponse struct {
	BasePrice          float64 `json:"basePrice"`
	SeasonAdjustment   float64 `json:"seasonAdjustment"`
	GuestSubtotal      float64 `json:"guestSubtotal"`
	AddOnSubtotal      float64 `json:"addOnSubtotal"`
	Subtotal           float64 `json:"subtotal"`
	Discount           float64 `json:"discount"`
	DiscountClamped    bool    `json:"discountClamped"`
	TaxableBase        float64 `json:"taxableBase"`
	Tax                float64 `json:"tax"`
	ServiceFee         float64 `json:"serviceFee"`
	Total              float64 `json:"total"`
	RequiredExtraHours int     `json:"requiredExtraHours"`
	CapacityWarning    string  `json:"capacityWarning,omitempty"`
}

// ToUseCaseRequest converts the HTTP request into the use case model
func (r *PreviewRequest) ToUseCaseRequest(clientID int64) (*previewOffer.Request, error) {
	selection, err := r.Selection.ToDomainInput(clientID)
	if err != nil {
		return nil, err
	}
	return &previewOffer.Request{Selection: selection}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP response
func FromUseCaseResponse(resp *previewOffer.Response) *PreviewResponse {
	return &PreviewResponse{
		BasePrice:          resp.BasePrice,
		SeasonAdjustment:   resp.SeasonAdjustment,
		GuestSubtotal:      resp.GuestSubtotal,
		AddOnSubtotal:      resp.AddOnSubtotal,
		Subtotal:           resp.Subtotal,
		Discount:           resp.Discount,
		DiscountClamped:    resp.DiscountClamped,
		TaxableBase:        resp.TaxableBase,
		Tax:                resp.Tax,
		ServiceFee:         resp.ServiceFee,
		Total:              resp.Total,
		RequiredExtraHours: resp.RequiredExtraHours,
		CapacityWarning:    resp.CapacityWarning,
	}
}
