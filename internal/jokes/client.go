// Package jokes fetches joke content for the bot.
package jokes

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"strings"
	"time"

	apperrors "github.com/yashx/asha/internal/errors"
	"github.com/yashx/asha/pkg/config"
	"github.com/yashx/asha/pkg/metrics"
)

// Client fetches jokes from an icanhazdadjoke-compatible HTTP service.
// When the service is unreachable it falls back to the built-in catalog so
// the conversation keeps working.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a joke client from configuration.
func NewClient(cfg config.JokesConfig, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:  cfg.UserAgent,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// Joke returns one joke. Remote failures are logged and answered from the
// catalog instead of failing the conversation.
func (c *Client) Joke(ctx context.Context) (string, error) {
	joke, err := c.fetch(ctx)
	if err != nil {
		c.log.Warn("joke fetch failed, using catalog fallback", slog.Any("error", err))
		return defaultJokes[rand.Intn(len(defaultJokes))], nil
	}

	return joke, nil
}

func (c *Client) fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return "", fmt.Errorf("build joke request: %w", err)
	}

	req.Header.Set("Accept", "text/plain")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordOutbound("jokes", "error", time.Since(start))
		return "", apperrors.NewExternalAPIError("jokes", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		metrics.RecordOutbound("jokes", "error", time.Since(start))
		return "", apperrors.NewExternalAPIError("jokes", err)
	}

	if resp.StatusCode != http.StatusOK {
		metrics.RecordOutbound("jokes", fmt.Sprintf("%d", resp.StatusCode), time.Since(start))
		return "", apperrors.NewExternalAPIError("jokes", fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	metrics.RecordOutbound("jokes", "ok", time.Since(start))

	joke := strings.TrimSpace(string(body))
	if joke == "" {
		return "", apperrors.NewExternalAPIError("jokes", fmt.Errorf("empty response body"))
	}

	return joke, nil
}
