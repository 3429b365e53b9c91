package get_catalog

import (
	"context"

	"github.com/salaluna/offer-service/internal/service/catalog/models"
)

type CatalogService interface {
	GetSnapshot(ctx context.Context) (*models.SnapshotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
