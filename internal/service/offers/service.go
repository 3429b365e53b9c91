package offers

import (
	"context"
	"errors"
	"fmt"

	"github.com/salaluna/offer-service/internal/domain"
	offerRepo "github.com/salaluna/offer-service/internal/infra/storage/offer"
	catalogSvc "github.com/salaluna/offer-service/internal/service/catalog"
	"github.com/salaluna/offer-service/internal/service/offers/models"
)

// Service manages the lifecycle of persisted offers: draft creation,
// retrieval, listing and discarding. Submission lives in its own usecase.
type Service struct {
	offerRepo       OfferRepository
	catalogProvider CatalogProvider
	logger          Logger
}

// NewService creates an offers service
func NewService(offerRepo OfferRepository, catalogProvider CatalogProvider, logger Logger) *Service {
	return &Service{
		offerRepo:       offerRepo,
		catalogProvider: catalogProvider,
		logger:          logger,
	}
}

// Create starts a new draft offer. The selection payload is replayed through
// the engine's edit operations, so partially built drafts are accepted but
// structurally invalid ones are not.
func (s *Service) Create(ctx context.Context, req *models.CreateOfferRequest) (*models.OfferResponse, error) {
	s.logger.Info("Create: new draft offer for client=%d", req.ClientID)

	if req.ClientID <= 0 {
		return nil, fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}
	req.Selection.ClientID = req.ClientID

	cat, err := s.catalogProvider.Snapshot(ctx)
	if err != nil {
		if errors.Is(err, catalogSvc.ErrUnavailable) {
			s.logger.Warn("Create: catalog unavailable for client=%d", req.ClientID)
			return nil, ErrCatalogUnavailable
		}
		s.logger.Error("Create: failed to fetch catalog snapshot: %v", err)
		return nil, fmt.Errorf("%w: failed to fetch catalog: %v", ErrInternal, err)
	}

	sel, breakdown, err := domain.BuildSelection(cat, req.Selection)
	if err != nil {
		if errors.Is(err, domain.ErrCatalogInconsistency) {
			s.logger.Error("Create: catalog inconsistency for client=%d: %v", req.ClientID, err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		s.logger.Warn("Create: selection rejected for client=%d: %v", req.ClientID, err)
		return nil, err
	}

	addOns, err := domain.DenormalizeAddOns(sel, cat)
	if err != nil {
		s.logger.Error("Create: failed to denormalize add-ons: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	offer := &domain.Offer{
		ClientID:  req.ClientID,
		Status:    domain.OfferStatusDraft,
		Selection: *sel,
		AddOns:    addOns,
		Breakdown: *breakdown,
	}

	created, err := s.offerRepo.Create(ctx, offer)
	if err != nil {
		s.logger.Error("Create: repository error for client=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: draft offer id=%d created for client=%d", created.ID, req.ClientID)
	return models.FromDomainOffer(created), nil
}

// GetByID fetches an offer. Clients can only see their own offers.
func (s *Service) GetByID(ctx context.Context, req *models.GetOfferRequest) (*models.OfferResponse, error) {
	s.logger.Info("GetByID: fetching offer id=%d for client=%d", req.OfferID, req.ClientID)

	offer, err := s.offerRepo.GetByID(ctx, req.OfferID)
	if err != nil {
		if errors.Is(err, offerRepo.ErrOfferNotFound) {
			s.logger.Warn("GetByID: offer id=%d not found", req.OfferID)
			return nil, ErrOfferNotFound
		}
		s.logger.Error("GetByID: repository error for offer id=%d: %v", req.OfferID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if offer.ClientID != req.ClientID {
		s.logger.Warn("GetByID: access denied for client=%d to offer id=%d", req.ClientID, req.OfferID)
		return nil, ErrAccessDenied
	}

	return models.FromDomainOffer(offer), nil
}

// ListByClient fetches the client's offer history, optionally filtered by status
func (s *Service) ListByClient(ctx context.Context, req *models.ListOffersRequest) (*models.OfferListResponse, error) {
	s.logger.Info("ListByClient: fetching offers for client=%d, status=%v", req.ClientID, req.Status)

	var domainStatus *domain.OfferStatus
	if req.Status != nil {
		status, err := models.ToDomainOfferStatus(*req.Status)
		if err != nil {
			s.logger.Warn("ListByClient: invalid status=%s for client=%d", *req.Status, req.ClientID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	offers, err := s.offerRepo.ListByClient(ctx, req.ClientID, domainStatus)
	if err != nil {
		s.logger.Error("ListByClient: repository error for client=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: ListByClient - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByClient: fetched %d offers for client=%d", len(offers), req.ClientID)
	return models.FromDomainOfferList(offers), nil
}

// Discard drops a draft offer. Submitted offers cannot be discarded.
func (s *Service) Discard(ctx context.Context, req *models.DiscardOfferRequest) error {
	s.logger.Info("Discard: discarding offer id=%d by client=%d", req.OfferID, req.ClientID)

	offer, err := s.offerRepo.GetByID(ctx, req.OfferID)
	if err != nil {
		if errors.Is(err, offerRepo.ErrOfferNotFound) {
			s.logger.Warn("Discard: offer id=%d not found", req.OfferID)
			return ErrOfferNotFound
		}
		s.logger.Error("Discard: repository error for offer id=%d: %v", req.OfferID, err)
		return fmt.Errorf("%w: Discard - repository error: %v", ErrInternal, err)
	}

	if offer.ClientID != req.ClientID {
		s.logger.Warn("Discard: access denied for client=%d to offer id=%d", req.ClientID, req.OfferID)
		return ErrAccessDenied
	}
	if !offer.CanBeDiscarded() {
		s.logger.Warn("Discard: offer id=%d is not a draft, status=%s", req.OfferID, offer.Status)
		return ErrNotDraft
	}

	if err := s.offerRepo.UpdateStatus(ctx, req.OfferID, domain.OfferStatusDiscarded); err != nil {
		if errors.Is(err, offerRepo.ErrOfferNotFound) {
			return ErrOfferNotFound
		}
		s.logger.Error("Discard: repository error updating offer id=%d: %v", req.OfferID, err)
		return fmt.Errorf("%w: Discard - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Discard: offer id=%d discarded", req.OfferID)
	return nil
}
