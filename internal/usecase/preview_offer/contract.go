package preview_offer

import (
	"context"

	"github.com/salaluna/offer-service/internal/domain"
)

// CatalogProvider supplies the immutable catalog snapshot for a session
type CatalogProvider interface {
	Snapshot(ctx context.Context) (*domain.Catalog, error)
}

// Logger is the logging interface the use case needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
