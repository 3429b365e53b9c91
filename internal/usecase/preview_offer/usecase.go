package preview_offer

import (
	"context"
	"errors"
	"fmt"

	"github.com/salaluna/offer-service/internal/domain"
	catalogSvc "github.com/salaluna/offer-service/internal/service/catalog"
)

// UseCase prices a selection payload without persisting anything
type UseCase struct {
	catalogProvider CatalogProvider
	logger          Logger
}

// NewUseCase creates a preview use case
func NewUseCase(catalogProvider CatalogProvider, logger Logger) *UseCase {
	return &UseCase{
		catalogProvider: catalogProvider,
		logger:          logger,
	}
}

// Execute replays the selection through the engine and returns the itemized
// breakdown. Rejected edits surface as domain violations; the capacity check
// is advisory and reported as a warning instead.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("PreviewOffer: client=%d, venue=%d, package=%d, guests=%d",
		req.Selection.ClientID, req.Selection.VenueID, req.Selection.PackageID, req.Selection.GuestCount)

	// 1. Validate the payload shape
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("PreviewOffer: validation failed: %v", err)
		return nil, err
	}

	// 2. Fetch the catalog snapshot for this session
	cat, err := uc.catalogProvider.Snapshot(ctx)
	if err != nil {
		if errors.Is(err, catalogSvc.ErrUnavailable) {
			return nil, ErrCatalogUnavailable
		}
		uc.logger.Error("PreviewOffer: failed to fetch catalog: %v", err)
		return nil, fmt.Errorf("%w: failed to fetch catalog: %v", ErrInternal, err)
	}

	// 3. Replay the selection through the engine's edit operations
	sel, breakdown, err := domain.BuildSelection(cat, req.Selection)
	if err != nil {
		uc.logger.Warn("PreviewOffer: selection rejected: %v", err)
		return nil, err
	}

	resp := &Response{
		BasePrice:        breakdown.BasePrice,
		SeasonAdjustment: breakdown.SeasonAdjustment,
		GuestSubtotal:    breakdown.GuestSubtotal,
		AddOnSubtotal:    breakdown.AddOnSubtotal,
		Subtotal:         breakdown.Subtotal,
		Discount:         breakdown.Discount,
		DiscountClamped:  breakdown.DiscountClamped,
		TaxableBase:      breakdown.TaxableBase,
		Tax:              breakdown.Tax,
		ServiceFee:       breakdown.ServiceFee,
		Total:            breakdown.Total,
	}

	// 4. Extra-hour requirement, when a package and schedule are in place
	if sel.PackageID != 0 && !sel.StartTime.IsZero() && !sel.EndTime.IsZero() {
		pkg, err := cat.PackageByID(sel.PackageID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		required, err := domain.RequiredExtraHours(sel.StartTime, sel.EndTime, pkg.BaseDurationHours)
		if err == nil {
			resp.RequiredExtraHours = required
		}
	}

	// 5. Advisory capacity check, reported but never blocking a preview
	if err := domain.CheckCapacity(sel, cat); err != nil {
		if errors.Is(err, domain.ErrCapacityNotConfirmed) {
			resp.CapacityWarning = err.Error()
		} else {
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("PreviewOffer: total=%.2f, subtotal=%.2f, clamped=%t",
		resp.Total, resp.Subtotal, resp.DiscountClamped)

	return resp, nil
}
