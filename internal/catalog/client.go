package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Client fetches the catalog JSON. Fetch failures are reported as errors, not
// panics: the storefront degrades to an inline placeholder and an empty
// catalog.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// NewClient creates a catalog client for a base URL. The fixed relative
// catalog path is appended at fetch time.
func NewClient(baseURL string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		logger:  logger,
	}
}

// Fetch retrieves and decodes the product array. A non-2xx response or a
// decode failure yields an error and no products.
func (c *Client) Fetch(ctx context.Context) ([]Product, error) {
	url := c.baseURL + Path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building catalog request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("catalog fetch failed", zap.String("url", url), zap.Error(err))
		return nil, fmt.Errorf("fetching catalog: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("catalog fetch bad status",
			zap.String("url", url),
			zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("fetching catalog: unexpected status %d", resp.StatusCode)
	}

	var products []Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		c.logger.Warn("catalog decode failed", zap.String("url", url), zap.Error(err))
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	// A JSON null body is an empty catalog, not a missing one. Callers
	// distinguish loaded-and-empty from not-yet-loaded by nilness.
	if products == nil {
		products = []Product{}
	}

	c.logger.Debug("catalog fetched", zap.Int("products", len(products)))
	return products, nil
}
