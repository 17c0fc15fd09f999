package main

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yashx/asha/internal/health"
	"github.com/yashx/asha/internal/webhook"
	"github.com/yashx/asha/pkg/config"
	"github.com/yashx/asha/pkg/logger"
)

func newEngine(cfg *config.Config, log *slog.Logger, handler *webhook.Handler, checker *health.Checker) *gin.Engine {
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(logger.Middleware())
	engine.Use(logger.RequestLogger(log))

	engine.GET("/webhook", handler.Verify)
	engine.POST("/webhook", handler.Receive)

	engine.GET("/healthz", func(c *gin.Context) {
		components, healthy := checker.Check(c.Request.Context())
		status := http.StatusOK
		if !healthy {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{
			"status":     map[bool]string{true: "ok", false: "degraded"}[healthy],
			"components": components,
		})
	})

	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return engine
}
