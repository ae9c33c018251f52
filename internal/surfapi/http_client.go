package surfapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ngmaloney/surf-terminal/internal/logger"
	"github.com/ngmaloney/surf-terminal/internal/models"
)

const defaultUserAgent = "SurfTerminal/1.0 (github.com/ngmaloney/surf-terminal)"

// HTTPClient implements Client against the Surf API over HTTP
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
	log        *logger.Logger
}

// Option customises an HTTPClient
type Option func(*HTTPClient)

// WithUserAgent overrides the User-Agent header
func WithUserAgent(ua string) Option {
	return func(c *HTTPClient) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithHTTPClient swaps the underlying *http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		c.httpClient = hc
	}
}

// WithLogger attaches a logger for request tracing
func WithLogger(l *logger.Logger) Option {
	return func(c *HTTPClient) {
		c.log = l
	}
}

// NewHTTPClient creates a client for the server at baseURL
func NewHTTPClient(baseURL string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		userAgent:  defaultUserAgent,
		log:        logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListBeaches fetches the home page and reads its beach selector
func (c *HTTPClient) ListBeaches(ctx context.Context) ([]models.BeachOption, error) {
	resp, err := c.do(ctx, http.MethodGet, "/", nil, "text/html")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch beach list: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	beaches, err := parseCatalog(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read beach list: %w", err)
	}
	return beaches, nil
}

// GetConditions retrieves the current conditions for a beach
func (c *HTTPClient) GetConditions(ctx context.Context, beachID string) (*models.Conditions, error) {
	resp, err := c.do(ctx, http.MethodGet, "/surf/"+url.PathEscape(beachID), nil, "")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch conditions: %w", err)
	}
	defer resp.Body.Close()

	if !isOK(resp.StatusCode) {
		return nil, decodeAPIError(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return decodeConditions(body)
}

// AddBeach posts a new beach as JSON
func (c *HTTPClient) AddBeach(ctx context.Context, beach models.Beach) error {
	payload, err := json.Marshal(beach)
	if err != nil {
		return fmt.Errorf("failed to encode beach: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, "/playas/add", payload, "")
	if err != nil {
		return fmt.Errorf("failed to save beach: %w", err)
	}
	defer resp.Body.Close()

	if !isOK(resp.StatusCode) {
		return decodeAPIError(resp)
	}
	return nil
}

// DeleteBeach removes a beach by id
func (c *HTTPClient) DeleteBeach(ctx context.Context, beachID string) error {
	resp, err := c.do(ctx, http.MethodDelete, "/playas/delete/"+url.PathEscape(beachID), nil, "")
	if err != nil {
		return fmt.Errorf("failed to delete beach: %w", err)
	}
	defer resp.Body.Close()

	if !isOK(resp.StatusCode) {
		return decodeAPIError(resp)
	}
	return nil
}

// do sends one request. body, when non-nil, is sent as JSON.
func (c *HTTPClient) do(ctx context.Context, method, path string, body []byte, accept string) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if accept == "" {
		accept = "application/json"
	}
	requestID := uuid.NewString()
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", accept)
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error(err, map[string]any{"method": method, "path": path, "request_id": requestID})
		return nil, err
	}

	c.log.Debug("request completed", map[string]any{
		"method":      method,
		"path":        path,
		"status":      resp.StatusCode,
		"request_id":  requestID,
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return resp, nil
}

func isOK(status int) bool {
	return status >= 200 && status < 300
}
