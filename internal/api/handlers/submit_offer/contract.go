package submit_offer

import (
	"context"

	submitOffer "github.com/salaluna/offer-service/internal/usecase/submit_offer"
)

type SubmitOfferUseCase interface {
	Execute(ctx context.Context, req *submitOffer.Request) (*submitOffer.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
