package list_client_offers

import (
	"context"

	"github.com/salaluna/offer-service/internal/service/offers/models"
)

type OffersService interface {
	ListByClient(ctx context.Context, req *models.ListOffersRequest) (*models.OfferListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
