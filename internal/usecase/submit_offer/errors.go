package submit_offer

import "errors"

var (
	// ErrInvalidInput is returned for malformed requests
	ErrInvalidInput = errors.New("invalid input data")

	// ErrOfferNotFound is returned when the offer does not exist
	ErrOfferNotFound = errors.New("offer not found")

	// ErrAccessDenied is returned when the offer belongs to another client
	ErrAccessDenied = errors.New("access denied")

	// ErrNotDraft is returned when the offer was already submitted or discarded
	ErrNotDraft = errors.New("offer is not a draft")

	// ErrPriceMismatch is returned when the pricing mirror recomputed a
	// different total than the local breakdown
	ErrPriceMismatch = errors.New("price mismatch with pricing service")

	// ErrCatalogUnavailable is returned when no catalog snapshot can be fetched
	ErrCatalogUnavailable = errors.New("catalog unavailable")

	// ErrInternal is returned for unexpected internal failures
	ErrInternal = errors.New("internal error")
)
