package offers

import (
	"context"

	"github.com/salaluna/offer-service/internal/domain"
)

// OfferRepository is the storage interface the service needs
type OfferRepository interface {
	Create(ctx context.Context, o *domain.Offer) (*domain.Offer, error)
	GetByID(ctx context.Context, id int64) (*domain.Offer, error)
	ListByClient(ctx context.Context, clientID int64, status *domain.OfferStatus) ([]*domain.Offer, error)
	UpdateStatus(ctx context.Context, id int64, status domain.OfferStatus) error
}

// CatalogProvider supplies the immutable catalog snapshot for a session
type CatalogProvider interface {
	Snapshot(ctx context.Context) (*domain.Catalog, error)
}

// Logger is the logging interface the service needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
