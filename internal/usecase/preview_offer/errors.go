package preview_offer

import "errors"

var (
	// ErrInvalidInput is returned for malformed requests
	ErrInvalidInput = errors.New("invalid input data")

	// ErrCatalogUnavailable is returned when no catalog snapshot can be fetched
	ErrCatalogUnavailable = errors.New("catalog unavailable")

	// ErrInternal is returned for unexpected internal failures
	ErrInternal = errors.New("internal error")
)
