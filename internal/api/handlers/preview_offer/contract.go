package preview_offer

import (
	"context"

	previewOffer "github.com/salaluna/offer-service/internal/usecase/preview_offer"
)

type PreviewOfferUseCase interface {
	Execute(ctx context.Context, req *previewOffer.Request) (*previewOffer.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
