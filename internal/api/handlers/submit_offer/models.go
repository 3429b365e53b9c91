package submit_offer

import (
	"time"

	submitOffer "github.com/salaluna/offer-service/internal/usecase/submit_offer"
)

// SubmitOfferResponse HTTP response model
type SubmitOfferResponse struct {
	OfferID        int64   `json:"offerId"`
	Status         string  `json:"status"`
	PriceConfirmed bool    `json:"priceConfirmed"`
	Total          float64 `json:"total"`
	SubmittedAt    string  `json:"submittedAt"`
}

// FromUseCaseResponse converts the use case response into the HTTP response
func FromUseCaseResponse(resp *submitOffer.Response) *SubmitOfferResponse {
	return &SubmitOfferResponse{
		OfferID:        resp.OfferID,
		Status:         resp.Status,
		PriceConfirmed: resp.PriceConfirmed,
		Total:          resp.Total,
		SubmittedAt:    resp.SubmittedAt.Format(time.RFC3339),
	}
}
