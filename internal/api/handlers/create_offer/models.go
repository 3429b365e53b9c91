package create_offer

import (
	"github.com/salaluna/offer-service/internal/api/handlers"
	"github.com/salaluna/offer-service/internal/service/offers/models"
)

// CreateOfferRequest HTTP request model
type CreateOfferRequest struct {
	Selection handlers.SelectionPayload `json:"selection"`
}

// ToServiceRequest converts the HTTP request into the service model
func (r *CreateOfferRequest) ToServiceRequest(clientID int64) (*models.CreateOfferRequest, error) {
	selection, err := r.Selection.ToDomainInput(clientID)
	if err != nil {
		return nil, err
	}
	return &models.CreateOfferRequest{
		ClientID:  clientID,
		Selection: selection,
	}, nil
}
