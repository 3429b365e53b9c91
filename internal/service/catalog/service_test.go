package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salaluna/offer-service/internal/domain"
	"github.com/salaluna/offer-service/internal/integrations/catalogservice"
)

type fakeSnapshotProvider struct {
	cat *domain.Catalog
	err error
}

func (f *fakeSnapshotProvider) Snapshot(ctx context.Context) (*domain.Catalog, error) {
	return f.cat, f.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func consistentCatalog() *domain.Catalog {
	return &domain.Catalog{
		Packages: map[int64]*domain.Package{
			1: {ID: 1, Name: "Paquete Estándar", Class: domain.ClassStandard,
				BasePrice: 1000, BaseDurationHours: 4, MinGuests: 50, PricePerExtraGuest: 20,
				IncludedServiceIDs: []int64{11}},
		},
		Services: map[int64]*domain.Service{
			11: {ID: 11, Name: "Sidra", BasePrice: 120, Group: domain.GroupSidra},
		},
		Seasons: map[int64]*domain.Season{},
		Venues: map[int64]*domain.Venue{
			1: {ID: 1, Name: "Sala Luna", Capacity: 150, PackageIDs: []int64{1}},
		},
		Rates: domain.Rates{IVA: 0.07, ServiceFee: 0.18},
	}
}

func TestSnapshot(t *testing.T) {
	svc := NewService(&fakeSnapshotProvider{cat: consistentCatalog()}, nopLogger{})

	cat, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Len(t, cat.Packages, 1)
}

func TestSnapshot_Unavailable(t *testing.T) {
	svc := NewService(&fakeSnapshotProvider{err: catalogservice.ErrSnapshotUnavailable}, nopLogger{})

	_, err := svc.Snapshot(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestSnapshot_InconsistentCatalogRejected(t *testing.T) {
	cat := consistentCatalog()
	cat.Packages[1].IncludedServiceIDs = []int64{9999}
	svc := NewService(&fakeSnapshotProvider{cat: cat}, nopLogger{})

	_, err := svc.Snapshot(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
