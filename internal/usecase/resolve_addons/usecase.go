package resolve_addons

import (
	"context"
	"errors"
	"fmt"

	"github.com/salaluna/offer-service/internal/domain"
	catalogSvc "github.com/salaluna/offer-service/internal/service/catalog"
)

// UseCase derives the selectable/blocked/upgrade/hidden listing for every
// catalog service against a selection. The listing is recomputed on demand,
// never stored.
type UseCase struct {
	catalogProvider CatalogProvider
	logger          Logger
}

// NewUseCase creates a resolve use case
func NewUseCase(catalogProvider CatalogProvider, logger Logger) *UseCase {
	return &UseCase{
		catalogProvider: catalogProvider,
		logger:          logger,
	}
}

// Execute resolves the add-on listing for the selection
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ResolveAddOns: client=%d, venue=%d, package=%d",
		req.Selection.ClientID, req.Selection.VenueID, req.Selection.PackageID)

	// 1. Validate the payload shape
	if req.Selection.ClientID <= 0 {
		return nil, fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	// 2. Fetch the catalog snapshot for this session
	cat, err := uc.catalogProvider.Snapshot(ctx)
	if err != nil {
		if errors.Is(err, catalogSvc.ErrUnavailable) {
			return nil, ErrCatalogUnavailable
		}
		uc.logger.Error("ResolveAddOns: failed to fetch catalog: %v", err)
		return nil, fmt.Errorf("%w: failed to fetch catalog: %v", ErrInternal, err)
	}

	// 3. Replay the selection through the engine's edit operations
	sel, _, err := domain.BuildSelection(cat, req.Selection)
	if err != nil {
		uc.logger.Warn("ResolveAddOns: selection rejected: %v", err)
		return nil, err
	}

	// 4. Derive the full listing
	statuses, err := domain.ServiceStatuses(sel, cat)
	if err != nil {
		uc.logger.Error("ResolveAddOns: failed to derive listing: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 5. Expose the active alternate of every bundled dual-exclusive group
	alternates, err := domain.ActiveAlternates(sel, cat)
	if err != nil {
		uc.logger.Error("ResolveAddOns: failed to derive alternates: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	resp := &Response{
		Services:         make([]ServiceStatus, 0, len(statuses)),
		ActiveAlternates: make(map[string]int64, len(alternates)),
	}
	for _, st := range statuses {
		resp.Services = append(resp.Services, ServiceStatus{
			ServiceID:     st.ServiceID,
			Name:          st.Name,
			Verdict:       st.Verdict.String(),
			Reason:        st.Reason,
			ConflictsWith: st.ConflictsWith,
		})
	}
	for group, id := range alternates {
		resp.ActiveAlternates[string(group)] = id
	}

	uc.logger.Info("ResolveAddOns: resolved %d services", len(resp.Services))

	return resp, nil
}
