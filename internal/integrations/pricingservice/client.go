package pricingservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger is the logging interface the client needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client talks to the server-side price-calculation mirror
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a pricing service client
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Confirm asks the pricing mirror to recompute the breakdown and confirm the
// local totals before commit
func (c *Client) Confirm(ctx context.Context, req *ConfirmRequest) (*Confirmation, error) {
	url := fmt.Sprintf("%s/internal/pricing/confirm", c.baseURL)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// continue below
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var confirmation Confirmation
	if err := json.NewDecoder(resp.Body).Decode(&confirmation); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &confirmation, nil
}

// ConfirmWithGracefulDegradation confirms the breakdown, downgrading
// transport failures to ErrServiceDegraded so submission can proceed with
// the local breakdown marked advisory. A disagreeing confirmation is a
// business answer, not a degradation, and is returned as-is.
func (c *Client) ConfirmWithGracefulDegradation(ctx context.Context, req *ConfirmRequest) (*Confirmation, error) {
	confirmation, err := c.Confirm(ctx, req)
	if err != nil {
		c.log.Error("PricingService unavailable, applying graceful degradation: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrServiceDegraded, err)
	}

	if !confirmation.Confirmed {
		c.log.Warn("PricingService disagrees with local breakdown: remote total=%.2f, detail=%s",
			confirmation.Total, confirmation.Detail)
	} else {
		c.log.Info("PricingService confirmed breakdown: total=%.2f", confirmation.Total)
	}

	return confirmation, nil
}
