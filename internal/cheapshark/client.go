package cheapshark

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lucvieira/gamedeals-backend/internal/deals"
	"github.com/lucvieira/gamedeals-backend/internal/stores"
	"github.com/lucvieira/gamedeals-backend/pkg/config"
	pkgerrors "github.com/lucvieira/gamedeals-backend/pkg/errors"
	"github.com/lucvieira/gamedeals-backend/pkg/logger"
	"github.com/lucvieira/gamedeals-backend/pkg/metrics"
)

var errLoggerRequired = errors.New("cheapshark logger is required")

// Client wraps the CheapShark API with centralized logging, metrics and
// error mapping. The API is public and read-only: no auth, no request
// parameters on the list endpoints, no retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logger.Logger
	upstream   *metrics.UpstreamMetrics
}

// NewClient initializes the CheapShark wrapper and validates the base URL.
func NewClient(cfg config.CheapSharkConfig, logg *logger.Logger, upstream *metrics.UpstreamMetrics) (*Client, error) {
	if logg == nil {
		return nil, errLoggerRequired
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("cheapshark base url is required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid cheapshark base url: %w", err)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logg,
		upstream:   upstream,
	}, nil
}

// FetchDeals retrieves the full deal list. Any failure propagates: deals are
// essential content and the caller decides how to surface the outage.
func (c *Client) FetchDeals(ctx context.Context) ([]deals.Deal, error) {
	var list []deals.Deal
	if err := c.getJSON(ctx, "deals", "/deals", &list); err != nil {
		return nil, err
	}
	return list, nil
}

// FetchStores retrieves the store metadata list. Failures propagate here as
// well; the store resolver owns the fallback behavior.
func (c *Client) FetchStores(ctx context.Context) ([]stores.Store, error) {
	var list []stores.Store
	if err := c.getJSON(ctx, "stores", "/stores", &list); err != nil {
		return nil, err
	}
	return list, nil
}

// RedirectURL composes the store redirect link for a deal. The link is
// handed to clients, never fetched by the service.
func (c *Client) RedirectURL(dealID string) string {
	return fmt.Sprintf("%s/redirect?dealID=%s", c.baseURL, url.QueryEscape(dealID))
}

func (c *Client) getJSON(ctx context.Context, resource, path string, dest any) error {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("build %s request", resource))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(resource, "network_error", start)
		c.logFailure(ctx, resource, err)
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, fmt.Sprintf("cheapshark %s fetch failed", resource))
	}
	defer func() {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.observe(resource, "bad_status", start)
		err := fmt.Errorf("unexpected status %d", resp.StatusCode)
		c.logFailure(ctx, resource, err)
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, fmt.Sprintf("cheapshark %s fetch failed", resource)).
			WithDetails(map[string]any{"status": resp.StatusCode})
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		c.observe(resource, "malformed_body", start)
		c.logFailure(ctx, resource, err)
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, fmt.Sprintf("cheapshark %s payload malformed", resource))
	}

	c.observe(resource, "ok", start)
	return nil
}

func (c *Client) observe(resource, outcome string, start time.Time) {
	c.upstream.ObserveFetch(resource, outcome, time.Since(start))
}

func (c *Client) logFailure(ctx context.Context, resource string, err error) {
	ctx = c.logger.WithField(ctx, "resource", resource)
	c.logger.Error(ctx, "cheapshark fetch failed", err)
}
