package submit_offer

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/salaluna/offer-service/internal/domain"
	offerRepo "github.com/salaluna/offer-service/internal/infra/storage/offer"
	"github.com/salaluna/offer-service/internal/integrations/pricingservice"
	catalogSvc "github.com/salaluna/offer-service/internal/service/catalog"
)

// totalTolerance absorbs float rounding between the local calculation and the
// pricing mirror
const totalTolerance = 0.01

// UseCase submits a draft offer: the final-submit predicate must hold, the
// breakdown is recomputed against the current snapshot and confirmed by the
// pricing mirror, then the status flips to submitted.
type UseCase struct {
	offerRepo       OfferRepository
	catalogProvider CatalogProvider
	pricingClient   PricingServiceClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates a submit use case
func NewUseCase(
	offerRepo OfferRepository,
	catalogProvider CatalogProvider,
	pricingClient PricingServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		offerRepo:       offerRepo,
		catalogProvider: catalogProvider,
		pricingClient:   pricingClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute submits the draft. Uses a serializable transaction for the status
// flip so a concurrent submit or discard cannot race it.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitOffer: offer=%d, client=%d", req.OfferID, req.ClientID)

	// 1. Validate input
	if req.OfferID <= 0 {
		return nil, fmt.Errorf("%w: offerID must be positive", ErrInvalidInput)
	}
	if req.ClientID <= 0 {
		return nil, fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	// 2. Current time
	now := uc.timeProvider.Now()

	// 3. Load the offer and check ownership and state
	offer, err := uc.offerRepo.GetByID(ctx, req.OfferID)
	if err != nil {
		if errors.Is(err, offerRepo.ErrOfferNotFound) {
			uc.logger.Warn("SubmitOffer: offer id=%d not found", req.OfferID)
			return nil, ErrOfferNotFound
		}
		uc.logger.Error("SubmitOffer: failed to load offer id=%d: %v", req.OfferID, err)
		return nil, fmt.Errorf("%w: failed to load offer: %v", ErrInternal, err)
	}
	if offer.ClientID != req.ClientID {
		uc.logger.Warn("SubmitOffer: access denied for client=%d to offer id=%d", req.ClientID, req.OfferID)
		return nil, ErrAccessDenied
	}
	if !offer.CanBeSubmitted() {
		uc.logger.Warn("SubmitOffer: offer id=%d is not a draft, status=%s", req.OfferID, offer.Status)
		return nil, ErrNotDraft
	}

	// 4. Fetch the catalog snapshot for this submission
	cat, err := uc.catalogProvider.Snapshot(ctx)
	if err != nil {
		if errors.Is(err, catalogSvc.ErrUnavailable) {
			return nil, ErrCatalogUnavailable
		}
		uc.logger.Error("SubmitOffer: failed to fetch catalog: %v", err)
		return nil, fmt.Errorf("%w: failed to fetch catalog: %v", ErrInternal, err)
	}

	// 5. Final-submit predicate: the client, event-details and package guards
	// must all hold. The first failing step is reported to the caller.
	if err := domain.CanSubmit(&offer.Selection, cat, now); err != nil {
		uc.logger.Warn("SubmitOffer: offer id=%d not submittable: %v", req.OfferID, err)
		return nil, err
	}

	// 6. Capacity overflow must have been explicitly confirmed by submit time
	if err := domain.CheckCapacity(&offer.Selection, cat); err != nil {
		uc.logger.Warn("SubmitOffer: capacity check failed for offer id=%d: %v", req.OfferID, err)
		return nil, err
	}

	// 7. Recompute the breakdown against the current snapshot
	breakdown, err := domain.CalculatePrice(&offer.Selection, cat)
	if err != nil {
		uc.logger.Error("SubmitOffer: failed to price offer id=%d: %v", req.OfferID, err)
		return nil, fmt.Errorf("%w: failed to price offer: %v", ErrInternal, err)
	}

	// 8. Confirm the totals with the pricing mirror. An unavailable mirror
	// degrades gracefully: the offer is submitted with the local breakdown
	// marked advisory. A disagreeing mirror blocks the submission.
	priceConfirmed := false
	confirmation, err := uc.pricingClient.ConfirmWithGracefulDegradation(ctx, pricingservice.NewConfirmRequest(&offer.Selection, breakdown))
	switch {
	case errors.Is(err, pricingservice.ErrServiceDegraded):
		uc.logger.Warn("SubmitOffer: pricing service degraded, submitting offer id=%d with advisory totals", req.OfferID)
	case err != nil:
		uc.logger.Error("SubmitOffer: pricing confirmation failed for offer id=%d: %v", req.OfferID, err)
		return nil, fmt.Errorf("%w: pricing confirmation failed: %v", ErrInternal, err)
	case !confirmation.Confirmed:
		uc.logger.Warn("SubmitOffer: pricing mismatch for offer id=%d: local=%.2f, remote=%.2f",
			req.OfferID, breakdown.Total, confirmation.Total)
		return nil, fmt.Errorf("%w: local total %.2f, remote total %.2f",
			ErrPriceMismatch, breakdown.Total, confirmation.Total)
	case math.Abs(confirmation.Total-breakdown.Total) > totalTolerance:
		uc.logger.Warn("SubmitOffer: pricing total drift for offer id=%d: local=%.2f, remote=%.2f",
			req.OfferID, breakdown.Total, confirmation.Total)
		return nil, fmt.Errorf("%w: local total %.2f, remote total %.2f",
			ErrPriceMismatch, breakdown.Total, confirmation.Total)
	default:
		priceConfirmed = true
	}

	// 9. Freeze the add-on lines with the prices actually applied
	addOns, err := domain.DenormalizeAddOns(&offer.Selection, cat)
	if err != nil {
		uc.logger.Error("SubmitOffer: failed to denormalize add-ons for offer id=%d: %v", req.OfferID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 10. Flip the status inside a serializable transaction
	offer.Status = domain.OfferStatusSubmitted
	offer.Breakdown = *breakdown
	offer.AddOns = addOns
	offer.PriceConfirmed = priceConfirmed
	offer.SubmittedAt = &now

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Re-read under the transaction so a concurrent submit or discard
		// that slipped in is detected
		current, err := uc.offerRepo.GetByID(txCtx, req.OfferID)
		if err != nil {
			if errors.Is(err, offerRepo.ErrOfferNotFound) {
				return ErrOfferNotFound
			}
			return fmt.Errorf("%w: failed to load offer: %v", ErrInternal, err)
		}
		if !current.CanBeSubmitted() {
			return ErrNotDraft
		}

		if err := uc.offerRepo.Update(txCtx, offer); err != nil {
			if errors.Is(err, offerRepo.ErrOfferNotFound) {
				return ErrOfferNotFound
			}
			return fmt.Errorf("%w: failed to update offer: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("SubmitOffer: offer id=%d submitted, total=%.2f, priceConfirmed=%t",
		req.OfferID, breakdown.Total, priceConfirmed)

	return &Response{
		OfferID:        offer.ID,
		Status:         string(offer.Status),
		PriceConfirmed: priceConfirmed,
		Total:          breakdown.Total,
		SubmittedAt:    now,
	}, nil
}
