package discard_offer

import (
	"context"

	"github.com/salaluna/offer-service/internal/service/offers/models"
)

type OffersService interface {
	Discard(ctx context.Context, req *models.DiscardOfferRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
