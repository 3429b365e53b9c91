package offers

import "errors"

var (
	// ErrOfferNotFound is returned when the offer does not exist
	ErrOfferNotFound = errors.New("offer not found")

	// ErrAccessDenied is returned when the offer belongs to another client
	ErrAccessDenied = errors.New("access denied")

	// ErrNotDraft is returned when a draft-only operation hits a submitted
	// or discarded offer
	ErrNotDraft = errors.New("offer is not a draft")

	// ErrInvalidInput is returned for malformed requests
	ErrInvalidInput = errors.New("invalid input data")

	// ErrCatalogUnavailable is returned when no catalog snapshot can be fetched
	ErrCatalogUnavailable = errors.New("catalog unavailable")

	// ErrInternal is returned for unexpected internal failures
	ErrInternal = errors.New("offers service: internal error")
)
