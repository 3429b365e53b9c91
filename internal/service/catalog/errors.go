package catalog

import "errors"

var (
	// ErrUnavailable is returned when the catalog service cannot supply a snapshot
	ErrUnavailable = errors.New("catalog unavailable")

	// ErrInternal is returned for unexpected internal failures
	ErrInternal = errors.New("catalog service: internal error")
)
