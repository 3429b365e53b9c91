package validate_step

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salaluna/offer-service/internal/domain"
)

type fakeCatalogProvider struct {
	cat *domain.Catalog
}

func (f *fakeCatalogProvider) Snapshot(ctx context.Context) (*domain.Catalog, error) {
	return f.cat, nil
}

type fakeTimeProvider struct{ now time.Time }

func (f fakeTimeProvider) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func stepCatalog() *domain.Catalog {
	return &domain.Catalog{
		Packages: map[int64]*domain.Package{
			1: {ID: 1, Name: "Paquete Estándar", Class: domain.ClassStandard,
				BasePrice: 1000, BaseDurationHours: 4, MinGuests: 50, PricePerExtraGuest: 20},
		},
		Services: map[int64]*domain.Service{},
		Seasons:  map[int64]*domain.Season{},
		Venues: map[int64]*domain.Venue{
			1: {ID: 1, Name: "Sala Luna", Capacity: 150, PackageIDs: []int64{1}},
		},
		Rates: domain.Rates{IVA: 0.07, ServiceFee: 0.18},
	}
}

func newTestUseCase() *UseCase {
	uc := NewUseCase(&fakeCatalogProvider{cat: stepCatalog()}, nopLogger{})
	uc.timeProvider = fakeTimeProvider{now: time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

func completeInput() domain.SelectionInput {
	return domain.SelectionInput{
		ClientID:   7,
		VenueID:    1,
		PackageID:  1,
		EventDate:  time.Date(2026, time.June, 13, 0, 0, 0, 0, time.UTC),
		StartTime:  "16:00",
		EndTime:    "20:00",
		GuestCount: 50,
	}
}

func TestValidateStep_AllowedJump(t *testing.T) {
	uc := newTestUseCase()

	resp, err := uc.Execute(context.Background(), &Request{
		Selection:  completeInput(),
		TargetStep: "add_ons",
	})
	require.NoError(t, err)
	assert.True(t, resp.Allowed)
	assert.Empty(t, resp.FailedStep)
}

func TestValidateStep_BlockedJumpNamesFailingStep(t *testing.T) {
	uc := newTestUseCase()

	in := completeInput()
	in.EventDate = time.Time{}
	in.PackageID = 0

	resp, err := uc.Execute(context.Background(), &Request{
		Selection:  in,
		TargetStep: "package_and_season",
	})
	require.NoError(t, err)
	assert.False(t, resp.Allowed)
	assert.Equal(t, "event_details", resp.FailedStep)
	assert.Equal(t, "event date is required", resp.Reason)
}

func TestValidateStep_SubmitPredicate(t *testing.T) {
	uc := newTestUseCase()

	resp, err := uc.Execute(context.Background(), &Request{
		Selection:  completeInput(),
		TargetStep: "submitted",
	})
	require.NoError(t, err)
	assert.True(t, resp.Allowed)

	in := completeInput()
	in.PackageID = 0
	resp, err = uc.Execute(context.Background(), &Request{
		Selection:  in,
		TargetStep: "submitted",
	})
	require.NoError(t, err)
	assert.False(t, resp.Allowed)
	assert.Equal(t, "package_and_season", resp.FailedStep)
}

func TestValidateStep_ReplayViolationNamesOwningStep(t *testing.T) {
	uc := newTestUseCase()

	in := completeInput()
	in.StartTime = "09:30"
	in.EndTime = "14:00"

	resp, err := uc.Execute(context.Background(), &Request{
		Selection:  in,
		TargetStep: "add_ons",
	})
	require.NoError(t, err)
	assert.False(t, resp.Allowed)
	assert.Equal(t, "event_details", resp.FailedStep)
	assert.NotEmpty(t, resp.Reason)
}

func TestValidateStep_UnknownStep(t *testing.T) {
	uc := newTestUseCase()

	_, err := uc.Execute(context.Background(), &Request{
		Selection:  completeInput(),
		TargetStep: "nonsense",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
