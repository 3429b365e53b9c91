package preview_offer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salaluna/offer-service/internal/domain"
	catalogSvc "github.com/salaluna/offer-service/internal/service/catalog"
)

type fakeCatalogProvider struct {
	cat *domain.Catalog
	err error
}

func (f *fakeCatalogProvider) Snapshot(ctx context.Context) (*domain.Catalog, error) {
	return f.cat, f.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func previewCatalog() *domain.Catalog {
	return &domain.Catalog{
		Packages: map[int64]*domain.Package{
			1: {ID: 1, Name: "Paquete Estándar", Class: domain.ClassStandard,
				BasePrice: 1000, BaseDurationHours: 4, MinGuests: 50, PricePerExtraGuest: 20},
		},
		Services: map[int64]*domain.Service{
			51: {ID: 51, Name: "Hora extra", BasePrice: 150, Repeatable: true},
		},
		Seasons: map[int64]*domain.Season{
			1: {ID: 1, Name: "Alta", Months: []time.Month{time.June}, Adjustment: 200},
		},
		Venues: map[int64]*domain.Venue{
			1: {ID: 1, Name: "Sala Luna", Capacity: 150, PackageIDs: []int64{1}},
		},
		Rates: domain.Rates{IVA: 0.07, ServiceFee: 0.18},
	}
}

func TestPreviewOffer_ComputesBreakdown(t *testing.T) {
	uc := NewUseCase(&fakeCatalogProvider{cat: previewCatalog()}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Selection: domain.SelectionInput{
			ClientID:   7,
			VenueID:    1,
			PackageID:  1,
			EventDate:  time.Date(2026, time.June, 13, 0, 0, 0, 0, time.UTC),
			StartTime:  "20:00",
			EndTime:    "01:00",
			GuestCount: 50,
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1200.0, resp.Subtotal)
	assert.InDelta(t, 1500.0, resp.Total, 0.001)
	assert.Equal(t, 1, resp.RequiredExtraHours)
	assert.Empty(t, resp.CapacityWarning)
}

func TestPreviewOffer_CapacityOverflowIsAWarning(t *testing.T) {
	uc := NewUseCase(&fakeCatalogProvider{cat: previewCatalog()}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Selection: domain.SelectionInput{
			ClientID:   7,
			VenueID:    1,
			PackageID:  1,
			GuestCount: 200,
		},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.CapacityWarning)
	assert.Contains(t, resp.CapacityWarning, "Sala Luna")
}

func TestPreviewOffer_SelectionViolationSurfaces(t *testing.T) {
	uc := NewUseCase(&fakeCatalogProvider{cat: previewCatalog()}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Selection: domain.SelectionInput{
			ClientID:  7,
			StartTime: "09:30",
			EndTime:   "14:00",
		},
	})
	assert.ErrorIs(t, err, domain.ErrScheduleViolation)
}

func TestPreviewOffer_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeCatalogProvider{cat: previewCatalog()}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Selection: domain.SelectionInput{ClientID: 0},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPreviewOffer_CatalogUnavailable(t *testing.T) {
	uc := NewUseCase(&fakeCatalogProvider{err: catalogSvc.ErrUnavailable}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Selection: domain.SelectionInput{ClientID: 7},
	})
	assert.ErrorIs(t, err, ErrCatalogUnavailable)
}
