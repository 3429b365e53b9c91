package pricingservice

import (
	"context"
	"fmt"
)

// DisabledClient stands in when the pricing mirror is turned off in config.
// Every confirmation degrades, so offers are submitted with advisory totals.
type DisabledClient struct {
	log Logger
}

// NewDisabledClient creates the disabled stand-in
func NewDisabledClient(log Logger) *DisabledClient {
	return &DisabledClient{log: log}
}

// ConfirmWithGracefulDegradation always reports the mirror as degraded
func (c *DisabledClient) ConfirmWithGracefulDegradation(ctx context.Context, req *ConfirmRequest) (*Confirmation, error) {
	c.log.Info("PricingService disabled, skipping confirmation")
	return nil, fmt.Errorf("%w: pricing service disabled", ErrServiceDegraded)
}
