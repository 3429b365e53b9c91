package submit_offer

import (
	"context"
	"time"

	"github.com/salaluna/offer-service/internal/domain"
	"github.com/salaluna/offer-service/internal/integrations/pricingservice"
)

// OfferRepository is the storage interface the use case needs
type OfferRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Offer, error)
	Update(ctx context.Context, o *domain.Offer) error
}

// CatalogProvider supplies the immutable catalog snapshot for a session
type CatalogProvider interface {
	Snapshot(ctx context.Context) (*domain.Catalog, error)
}

// PricingServiceClient confirms the local breakdown against the server-side
// pricing mirror
type PricingServiceClient interface {
	ConfirmWithGracefulDegradation(ctx context.Context, req *pricingservice.ConfirmRequest) (*pricingservice.Confirmation, error)
}

// TransactionManager runs a function inside a serializable transaction
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider supplies the current time (for testing)
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface the use case needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time provider
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
