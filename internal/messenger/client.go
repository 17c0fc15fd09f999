// Package messenger implements the Messenger Graph API collaborators:
// message delivery, presence indicators, profile lookup, thread control and
// the one-time messenger profile setup.
package messenger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "github.com/yashx/asha/internal/errors"
	"github.com/yashx/asha/pkg/config"
	"github.com/yashx/asha/pkg/metrics"
)

// Client talks to the Messenger Graph API on behalf of one page.
type Client struct {
	baseURL     string
	pageToken   string
	targetAppID string
	httpClient  *http.Client
	log         *slog.Logger
}

// NewClient creates a Graph API client from configuration.
func NewClient(cfg config.MessengerConfig, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		pageToken:   cfg.PageToken,
		targetAppID: cfg.TargetAppID,
		httpClient:  &http.Client{Timeout: timeout},
		log:         log,
	}
}

// post sends a JSON body to path and decodes nothing; the Graph API response
// body is only read for error reporting. Returns the HTTP status code.
func (c *Client) post(ctx context.Context, api, path string, body any) (int, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return 0, fmt.Errorf("encode %s request: %w", api, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path, nil), bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("build %s request: %w", api, err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordOutbound(api, "error", time.Since(start))
		return 0, apperrors.NewExternalAPIError(api, err)
	}
	defer resp.Body.Close()

	metrics.RecordOutbound(api, fmt.Sprintf("%d", resp.StatusCode), time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, apperrors.NewExternalAPIError(api, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, readErrorBody(resp.Body)))
	}

	return resp.StatusCode, nil
}

// get fetches path with the given query and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, api, path string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path, query), nil)
	if err != nil {
		return fmt.Errorf("build %s request: %w", api, err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordOutbound(api, "error", time.Since(start))
		return apperrors.NewExternalAPIError(api, err)
	}
	defer resp.Body.Close()

	metrics.RecordOutbound(api, fmt.Sprintf("%d", resp.StatusCode), time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return apperrors.NewExternalAPIError(api, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, readErrorBody(resp.Body)))
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.NewExternalAPIError(api, fmt.Errorf("decode response: %w", err))
	}

	return nil
}

func (c *Client) endpoint(path string, query url.Values) string {
	if query == nil {
		query = url.Values{}
	}
	query.Set("access_token", c.pageToken)

	return c.baseURL + path + "?" + query.Encode()
}

func readErrorBody(r io.Reader) string {
	body, err := io.ReadAll(io.LimitReader(r, 2048))
	if err != nil {
		return ""
	}

	return strings.TrimSpace(string(body))
}
