package get_offer

import (
	"context"

	"github.com/salaluna/offer-service/internal/service/offers/models"
)

type OffersService interface {
	GetByID(ctx context.Context, req *models.GetOfferRequest) (*models.OfferResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
