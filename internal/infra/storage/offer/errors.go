package offer

import "errors"

var (
	// ErrOfferNotFound is returned when no offer matches the given id
	ErrOfferNotFound = errors.New("offer not found")

	// ErrBuildQuery is returned when a query cannot be built
	ErrBuildQuery = errors.New("storage: build query")

	// ErrExecQuery is returned when a query fails to execute
	ErrExecQuery = errors.New("storage: execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("storage: scan row")
)
