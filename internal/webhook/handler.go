// Package webhook provides the HTTP boundary: the verification handshake,
// signature checking and asynchronous event intake.
package webhook

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yashx/asha/internal/bot"
	apperrors "github.com/yashx/asha/internal/errors"
	"github.com/yashx/asha/pkg/logger"
	"github.com/yashx/asha/pkg/metrics"
)

// Handler handles webhook deliveries from the platform.
type Handler struct {
	verifyToken string
	appSecret   string
	router      *bot.Router
	errHandler  *apperrors.Handler
	log         *slog.Logger
	wg          sync.WaitGroup
}

// HandlerConfig holds configuration for creating a new Handler.
type HandlerConfig struct {
	VerifyToken string
	AppSecret   string
	Router      *bot.Router
	ErrHandler  *apperrors.Handler
	Logger      *slog.Logger
}

// NewHandler creates a webhook handler.
func NewHandler(cfg HandlerConfig) *Handler {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	return &Handler{
		verifyToken: cfg.VerifyToken,
		appSecret:   cfg.AppSecret,
		router:      cfg.Router,
		errHandler:  cfg.ErrHandler,
		log:         log,
	}
}

// Verify answers the platform's GET verification handshake.
func (h *Handler) Verify(c *gin.Context) {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode == "subscribe" && token == h.verifyToken {
		c.String(http.StatusOK, challenge)
		return
	}

	h.log.Warn("webhook verification rejected", slog.String("mode", mode))
	c.Status(http.StatusForbidden)
}

// Receive accepts a webhook delivery, acknowledges it immediately and
// processes the contained events asynchronously. The platform redelivers on
// non-200 responses, so only unverifiable requests are rejected.
func (h *Handler) Receive(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		h.log.Error("failed to read webhook body", slog.Any("error", err))
		c.Status(http.StatusBadRequest)
		return
	}

	if !h.validSignature(c.GetHeader("X-Hub-Signature-256"), body) {
		h.errHandler.Handle(c.Request.Context(), apperrors.NewWebhookError("invalid webhook signature"))
		c.Status(http.StatusForbidden)
		return
	}

	events, err := parseEvents(body)
	if err != nil {
		h.errHandler.Handle(c.Request.Context(), apperrors.NewWebhookError(err.Error()))
		c.Status(http.StatusBadRequest)
		return
	}

	c.String(http.StatusOK, "EVENT_RECEIVED")

	correlationID := logger.CorrelationIDFromContext(c.Request.Context())

	for _, event := range events {
		ev := event

		h.wg.Add(1)
		go func() {
			defer h.wg.Done()
			defer func() {
				if r := recover(); r != nil {
					h.log.Error("panic in event processing", slog.Any("panic", r), slog.String("psid", ev.PSID))
				}
			}()

			// the request context ends with the HTTP response; events
			// outlive it, keeping only the correlation id
			ctx := logger.WithCorrelationID(context.Background(), correlationID)

			start := time.Now()
			routeErr := h.router.Route(ctx, ev)

			status := "ok"
			if routeErr != nil {
				status = "error"
				h.errHandler.Handle(ctx, routeErr)
			}
			metrics.RecordEvent(string(ev.Type), status, time.Since(start))
		}()
	}
}

// Wait blocks until all in-flight events finish; used as a shutdown hook.
func (h *Handler) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		h.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("webhook drain interrupted: %w", ctx.Err())
	}
}

// validSignature checks the X-Hub-Signature-256 header. Without a configured
// app secret the check is skipped, which keeps local development simple.
func (h *Handler) validSignature(header string, body []byte) bool {
	if h.appSecret == "" {
		return true
	}

	const prefix = "sha256="
	if len(header) <= len(prefix) || header[:len(prefix)] != prefix {
		return false
	}

	mac := hmac.New(sha256.New, []byte(h.appSecret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(header[len(prefix):]))
}
