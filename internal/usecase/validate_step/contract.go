package validate_step

import (
	"context"
	"time"

	"github.com/salaluna/offer-service/internal/domain"
)

// CatalogProvider supplies the immutable catalog snapshot for a session
type CatalogProvider interface {
	Snapshot(ctx context.Context) (*domain.Catalog, error)
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
