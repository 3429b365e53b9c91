package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/salaluna/offer-service/internal/domain"
	"github.com/salaluna/offer-service/internal/integrations/catalogservice"
	"github.com/salaluna/offer-service/internal/service/catalog/models"
)

// Service exposes the catalog snapshot to the API layer and to the other
// services. Each editing session works against one immutable snapshot.
type Service struct {
	provider SnapshotProvider
	logger   Logger
}

// NewService creates a catalog service
func NewService(provider SnapshotProvider, logger Logger) *Service {
	return &Service{
		provider: provider,
		logger:   logger,
	}
}

// Snapshot fetches the current catalog snapshot as domain types
func (s *Service) Snapshot(ctx context.Context) (*domain.Catalog, error) {
	cat, err := s.provider.Snapshot(ctx)
	if err != nil {
		if errors.Is(err, catalogservice.ErrSnapshotUnavailable) {
			s.logger.Warn("Snapshot: catalog service unavailable")
			return nil, ErrUnavailable
		}
		s.logger.Error("Snapshot: failed to fetch catalog: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if err := cat.Validate(); err != nil {
		s.logger.Error("Snapshot: inconsistent catalog: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return cat, nil
}

// GetSnapshot fetches the current catalog snapshot as a wire view
func (s *Service) GetSnapshot(ctx context.Context) (*models.SnapshotResponse, error) {
	cat, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return models.FromDomainCatalog(cat), nil
}
