package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogValidate(t *testing.T) {
	require.NoError(t, testCatalog().Validate())

	t.Run("package bundles unknown service", func(t *testing.T) {
		cat := testCatalog()
		cat.Packages[pkgStandard].IncludedServiceIDs = append(
			cat.Packages[pkgStandard].IncludedServiceIDs, 9999)

		err := cat.Validate()
		assert.ErrorIs(t, err, ErrCatalogInconsistency)
		assert.Contains(t, err.Error(), "9999")
	})

	t.Run("package prices unknown venue", func(t *testing.T) {
		cat := testCatalog()
		cat.Packages[pkgStandard].VenuePrices = map[int64]float64{9999: 750}

		err := cat.Validate()
		assert.ErrorIs(t, err, ErrCatalogInconsistency)
	})

	t.Run("venue offers unknown package", func(t *testing.T) {
		cat := testCatalog()
		cat.Venues[venueSalaLuna].PackageIDs = append(
			cat.Venues[venueSalaLuna].PackageIDs, 9999)

		assert.ErrorIs(t, cat.Validate(), ErrCatalogInconsistency)
	})

	t.Run("negative rates", func(t *testing.T) {
		cat := testCatalog()
		cat.Rates.IVA = -0.07

		assert.ErrorIs(t, cat.Validate(), ErrCatalogInconsistency)
	})
}
