package pricingservice

import "errors"

var (
	// ErrInternal is returned for transport-level client failures
	ErrInternal = errors.New("pricingservice client: internal error")

	// ErrInvalidResponse is returned when the pricing service responds with
	// an unexpected status or an unparsable body
	ErrInvalidResponse = errors.New("pricingservice client: invalid response")

	// ErrServiceDegraded is returned when the pricing service is unavailable
	// and the locally computed breakdown should be treated as advisory
	ErrServiceDegraded = errors.New("pricingservice unavailable: graceful degradation applied")
)
