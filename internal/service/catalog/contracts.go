package catalog

import (
	"context"

	"github.com/salaluna/offer-service/internal/domain"
)

// SnapshotProvider fetches catalog snapshots from the catalog service
type SnapshotProvider interface {
	Snapshot(ctx context.Context) (*domain.Catalog, error)
}

// Logger is the logging interface the service needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
