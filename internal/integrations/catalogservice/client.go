package catalogservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/salaluna/offer-service/internal/domain"
)

// Logger is the logging interface the client needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client fetches catalog snapshots from the catalog service
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a catalog service client
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Snapshot fetches the full catalog snapshot: packages, services, seasons,
// venues with per-venue price overrides, and the current tax/fee rates.
// Callers fetch it once per editing session and treat it as immutable.
func (c *Client) Snapshot(ctx context.Context) (*domain.Catalog, error) {
	url := fmt.Sprintf("%s/internal/catalog/snapshot", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// continue below
	case http.StatusServiceUnavailable:
		return nil, ErrSnapshotUnavailable
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var snapshot snapshotResponse
	if err := json.NewDecoder(resp.Body).Decode(&snapshot); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	cat := snapshot.toDomain()
	c.log.Info("Catalog snapshot fetched: %d packages, %d services, %d seasons, %d venues",
		len(cat.Packages), len(cat.Services), len(cat.Seasons), len(cat.Venues))

	return cat, nil
}
