package submit_offer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salaluna/offer-service/internal/domain"
	offerRepo "github.com/salaluna/offer-service/internal/infra/storage/offer"
	"github.com/salaluna/offer-service/internal/integrations/pricingservice"
)

type fakeOfferRepo struct {
	offer   *domain.Offer
	getErr  error
	updated *domain.Offer
}

func (f *fakeOfferRepo) GetByID(ctx context.Context, id int64) (*domain.Offer, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	cp := *f.offer
	return &cp, nil
}

func (f *fakeOfferRepo) Update(ctx context.Context, o *domain.Offer) error {
	f.updated = o
	return nil
}

type fakeCatalogProvider struct {
	cat *domain.Catalog
	err error
}

func (f *fakeCatalogProvider) Snapshot(ctx context.Context) (*domain.Catalog, error) {
	return f.cat, f.err
}

type fakePricingClient struct {
	confirmation *pricingservice.Confirmation
	err          error
}

func (f *fakePricingClient) ConfirmWithGracefulDegradation(ctx context.Context, req *pricingservice.ConfirmRequest) (*pricingservice.Confirmation, error) {
	return f.confirmation, f.err
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeTimeProvider struct{ now time.Time }

func (f fakeTimeProvider) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func submitCatalog() *domain.Catalog {
	return &domain.Catalog{
		Packages: map[int64]*domain.Package{
			1: {ID: 1, Name: "Paquete Estándar", Class: domain.ClassStandard,
				BasePrice: 1000, BaseDurationHours: 4, MinGuests: 50, PricePerExtraGuest: 20},
		},
		Services: map[int64]*domain.Service{},
		Seasons: map[int64]*domain.Season{
			1: {ID: 1, Name: "Alta", Months: []time.Month{time.June}, Adjustment: 200},
		},
		Venues: map[int64]*domain.Venue{
			1: {ID: 1, Name: "Sala Luna", Capacity: 150, PackageIDs: []int64{1}},
		},
		Rates: domain.Rates{IVA: 0.07, ServiceFee: 0.18},
	}
}

func draftOffer() *domain.Offer {
	return &domain.Offer{
		ID:       42,
		ClientID: 7,
		Status:   domain.OfferStatusDraft,
		Selection: domain.Selection{
			ClientID:   7,
			VenueID:    1,
			PackageID:  1,
			EventDate:  time.Date(2026, time.June, 13, 0, 0, 0, 0, time.UTC),
			StartTime:  "16:00",
			EndTime:    "20:00",
			GuestCount: 50,
		},
	}
}

func newTestUseCase(repo *fakeOfferRepo, pricing *fakePricingClient) *UseCase {
	uc := NewUseCase(repo, &fakeCatalogProvider{cat: submitCatalog()}, pricing, fakeTxManager{}, nopLogger{})
	uc.timeProvider = fakeTimeProvider{now: time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

func TestSubmitOffer_ConfirmedByPricingMirror(t *testing.T) {
	repo := &fakeOfferRepo{offer: draftOffer()}
	pricing := &fakePricingClient{confirmation: &pricingservice.Confirmation{Confirmed: true, Total: 1500}}
	uc := newTestUseCase(repo, pricing)

	resp, err := uc.Execute(context.Background(), &Request{OfferID: 42, ClientID: 7})
	require.NoError(t, err)

	assert.Equal(t, "submitted", resp.Status)
	assert.True(t, resp.PriceConfirmed)
	assert.InDelta(t, 1500.0, resp.Total, 0.001)

	require.NotNil(t, repo.updated)
	assert.Equal(t, domain.OfferStatusSubmitted, repo.updated.Status)
	assert.NotNil(t, repo.updated.SubmittedAt)
}

func TestSubmitOffer_DegradedMirrorSubmitsAdvisory(t *testing.T) {
	repo := &fakeOfferRepo{offer: draftOffer()}
	pricing := &fakePricingClient{err: pricingservice.ErrServiceDegraded}
	uc := newTestUseCase(repo, pricing)

	resp, err := uc.Execute(context.Background(), &Request{OfferID: 42, ClientID: 7})
	require.NoError(t, err)

	assert.Equal(t, "submitted", resp.Status)
	assert.False(t, resp.PriceConfirmed)
	require.NotNil(t, repo.updated)
	assert.False(t, repo.updated.PriceConfirmed)
}

func TestSubmitOffer_MirrorDisagreementBlocks(t *testing.T) {
	repo := &fakeOfferRepo{offer: draftOffer()}
	pricing := &fakePricingClient{confirmation: &pricingservice.Confirmation{Confirmed: false, Total: 1620}}
	uc := newTestUseCase(repo, pricing)

	_, err := uc.Execute(context.Background(), &Request{OfferID: 42, ClientID: 7})
	assert.ErrorIs(t, err, ErrPriceMismatch)
	assert.Nil(t, repo.updated)
}

func TestSubmitOffer_GuardFailureBlocks(t *testing.T) {
	offer := draftOffer()
	offer.Selection.PackageID = 0
	repo := &fakeOfferRepo{offer: offer}
	pricing := &fakePricingClient{confirmation: &pricingservice.Confirmation{Confirmed: true}}
	uc := newTestUseCase(repo, pricing)

	_, err := uc.Execute(context.Background(), &Request{OfferID: 42, ClientID: 7})

	var guardErr *domain.StepGuardError
	require.ErrorAs(t, err, &guardErr)
	assert.Equal(t, domain.StepPackageAndSeason, guardErr.Step)
	assert.Nil(t, repo.updated)
}

func TestSubmitOffer_UnconfirmedCapacityBlocks(t *testing.T) {
	offer := draftOffer()
	offer.Selection.GuestCount = 200
	repo := &fakeOfferRepo{offer: offer}
	pricing := &fakePricingClient{confirmation: &pricingservice.Confirmation{Confirmed: true}}
	uc := newTestUseCase(repo, pricing)

	_, err := uc.Execute(context.Background(), &Request{OfferID: 42, ClientID: 7})
	assert.ErrorIs(t, err, domain.ErrCapacityNotConfirmed)
}

func TestSubmitOffer_OwnershipAndState(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		repo := &fakeOfferRepo{getErr: offerRepo.ErrOfferNotFound}
		uc := newTestUseCase(repo, &fakePricingClient{})

		_, err := uc.Execute(context.Background(), &Request{OfferID: 42, ClientID: 7})
		assert.ErrorIs(t, err, ErrOfferNotFound)
	})

	t.Run("access denied", func(t *testing.T) {
		repo := &fakeOfferRepo{offer: draftOffer()}
		uc := newTestUseCase(repo, &fakePricingClient{})

		_, err := uc.Execute(context.Background(), &Request{OfferID: 42, ClientID: 99})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("already submitted", func(t *testing.T) {
		offer := draftOffer()
		offer.Status = domain.OfferStatusSubmitted
		repo := &fakeOfferRepo{offer: offer}
		uc := newTestUseCase(repo, &fakePricingClient{})

		_, err := uc.Execute(context.Background(), &Request{OfferID: 42, ClientID: 7})
		assert.ErrorIs(t, err, ErrNotDraft)
	})
}
