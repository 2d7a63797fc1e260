package edgar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Version is the client library version reported in the User-Agent header.
const Version = "1.2.0"

const (
	// DefaultBaseURL is the production API host.
	DefaultBaseURL = "https://api.edgarhound.io"

	// DefaultTimeout bounds each individual HTTP request.
	DefaultTimeout = 30 * time.Second

	apiPrefix = "/api/v1"
	userAgent = "edgarhound/" + Version

	// defaultListLimit is the page size used by List when none is given.
	defaultListLimit = 25

	// defaultIterLimit is the page size used by Iterate when none is given.
	defaultIterLimit = 100
)

// Client provides typed access to the edgarhound API.
//
// All configuration is fixed at construction time; a Client is safe for
// concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     zerolog.Logger

	// Resource services, wired at construction.
	Filings       *FilingService
	Insider       *InsiderService
	Institutional *InstitutionalService
	Companies     *CompanyService
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the production API host.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger attaches a logger for request debugging.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new API client authenticated with the given key.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	client := &Client{
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(client)
	}

	// Ensure baseURL doesn't have trailing slash
	client.baseURL = strings.TrimRight(client.baseURL, "/")

	client.Filings = &FilingService{client: client}
	client.Insider = &InsiderService{client: client}
	client.Institutional = &InstitutionalService{client: client}
	client.Companies = &CompanyService{client: client}

	return client, nil
}

// doRequest performs an authenticated GET request and returns the raw body.
// Responses with status >= 400 are classified into an APIError.
func (c *Client) doRequest(ctx context.Context, path string, params url.Values) ([]byte, error) {
	requestURL := c.baseURL + apiPrefix + path
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug().
		Str("url", requestURL).
		Msg("Making edgarhound API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, &APIError{
				Kind:       ErrorKindAPI,
				StatusCode: http.StatusRequestTimeout,
				Message:    "Request timeout",
			}
		}
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, classifyResponse(resp, apiPrefix+path, body)
	}

	return body, nil
}

// classifyResponse maps an error response to the matching APIError kind.
// 401 and 404 never consult the body; for the rest a malformed JSON body
// falls back to a fixed message rather than surfacing the decode failure.
func classifyResponse(resp *http.Response, path string, body []byte) error {
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return &APIError{
			Kind:       ErrorKindAuth,
			StatusCode: resp.StatusCode,
			Message:    "invalid or missing API key",
		}

	case http.StatusNotFound:
		return &APIError{
			Kind:       ErrorKindNotFound,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("resource not found: %s", path),
		}

	case http.StatusTooManyRequests:
		apiErr := &APIError{
			Kind:       ErrorKindRateLimit,
			StatusCode: resp.StatusCode,
			Message:    "rate limit exceeded",
		}
		if header := resp.Header.Get("X-RateLimit-Reset"); header != "" {
			if seconds, err := strconv.ParseInt(header, 10, 64); err == nil {
				resetAt := time.Unix(seconds, 0)
				apiErr.ResetAt = &resetAt
			}
		}
		return apiErr

	case http.StatusBadRequest:
		message := "invalid request parameters"
		var eb errorBody
		if err := json.Unmarshal(body, &eb); err == nil && eb.Error != "" {
			message = eb.Error
		}
		return &APIError{
			Kind:       ErrorKindValidation,
			StatusCode: resp.StatusCode,
			Message:    message,
		}

	default:
		apiErr := &APIError{
			Kind:       ErrorKindAPI,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("HTTP %d", resp.StatusCode),
		}
		var eb errorBody
		if err := json.Unmarshal(body, &eb); err == nil && eb.Error != "" {
			apiErr.Message = eb.Error
			apiErr.Code = eb.Code
		}
		return apiErr
	}
}

// isTimeout reports whether a transport error is a timeout rather than some
// other network failure.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// getJSON executes a request and decodes the body into T. The payload is
// trusted as-is; no structural validation happens client-side.
func getJSON[T any](ctx context.Context, c *Client, path string, params url.Values) (T, error) {
	var out T

	body, err := c.doRequest(ctx, path, params)
	if err != nil {
		return out, err
	}

	if err := json.Unmarshal(body, &out); err != nil {
		return out, fmt.Errorf("failed to parse response: %w", err)
	}

	return out, nil
}
