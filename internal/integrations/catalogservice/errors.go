package catalogservice

import "errors"

var (
	// ErrInternal is returned for transport-level client failures
	ErrInternal = errors.New("catalogservice client: internal error")

	// ErrInvalidResponse is returned when the catalog service responds with
	// an unexpected status or an unparsable body
	ErrInvalidResponse = errors.New("catalogservice client: invalid response")

	// ErrSnapshotUnavailable is returned when the catalog service cannot
	// produce a snapshot at the moment
	ErrSnapshotUnavailable = errors.New("catalog snapshot unavailable")
)
