package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	goredis "github.com/redis/go-redis/v9"

	"github.com/yashx/asha/internal/bot"
	"github.com/yashx/asha/internal/database"
	apperrors "github.com/yashx/asha/internal/errors"
	"github.com/yashx/asha/internal/health"
	"github.com/yashx/asha/internal/jokes"
	"github.com/yashx/asha/internal/lifecycle"
	"github.com/yashx/asha/internal/messenger"
	"github.com/yashx/asha/internal/profilecache"
	"github.com/yashx/asha/internal/state"
	"github.com/yashx/asha/internal/webhook"
	"github.com/yashx/asha/pkg/config"
	"github.com/yashx/asha/pkg/graceful"
	"github.com/yashx/asha/pkg/logger"
	appredis "github.com/yashx/asha/pkg/redis"

	_ "github.com/lib/pq"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, v, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	if cfg.Sentry.Enabled {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.Sentry.DSN,
			Environment:      cfg.AppEnv,
			TracesSampleRate: cfg.Sentry.TracesSampleRate,
		}); err != nil {
			slog.Error("failed to init sentry", slog.Any("error", err))
			os.Exit(1)
		}
		defer sentry.Flush(2 * time.Second)
	}

	log := logger.New(*cfg)
	slog.SetDefault(log)
	config.Watch(v, log)

	log.Info("starting asha bot",
		slog.String("env", cfg.AppEnv),
		slog.String("port", cfg.Server.Port),
		slog.String("state_backend", cfg.State.Backend),
	)

	shutdown := lifecycle.NewShutdown(log)
	checker := health.NewChecker(log)

	var redisClient *goredis.Client

	var storage state.Storage
	switch cfg.State.Backend {
	case "redis":
		rdb, err := appredis.New(ctx, cfg.Redis)
		if err != nil {
			log.Error("failed to connect to redis", slog.Any("error", err))
			os.Exit(1)
		}
		redisClient = rdb.Client
		storage = state.NewRedisStorage(rdb.Client, cfg.State.TTL, log)
		checker.AddCheck("redis", rdb)
		shutdown.Register("redis", func(context.Context) error { return rdb.Close() })

	case "postgres":
		db, err := sql.Open("postgres", cfg.Postgres.DSN())
		if err != nil {
			log.Error("failed to open database", slog.Any("error", err))
			os.Exit(1)
		}
		if err := db.PingContext(ctx); err != nil {
			log.Error("failed to ping database", slog.Any("error", err))
			os.Exit(1)
		}
		if err := database.NewMigrator(db, log).ApplyDir(ctx, "migrations"); err != nil {
			log.Error("failed to apply migrations", slog.Any("error", err))
			os.Exit(1)
		}
		storage = state.NewPostgresStorage(db, log)
		checker.AddCheck("postgres", health.CheckFunc(db.PingContext))
		shutdown.Register("postgres", func(context.Context) error { return db.Close() })

	default:
		log.Warn("using in-memory context store; contexts will not survive restarts")
		storage = state.NewMemoryStorage()
	}

	client := messenger.NewClient(cfg.Messenger, log)

	var profiles bot.ProfileSource = client
	if redisClient != nil {
		profiles = profilecache.New(redisClient, client, 0, log)
	}

	dispatcher := bot.NewDispatcher(storage, client, client, profiles, jokes.NewClient(cfg.Jokes, log), log)
	resolver := bot.NewResolver(dispatcher, client, log)
	router := bot.NewRouter(bot.RouterConfig{
		Dispatcher:    dispatcher,
		Resolver:      resolver,
		Store:         storage,
		Sender:        client,
		Presence:      client,
		ThreadControl: client,
		SafeWords:     cfg.Bot.SafeWords,
		Catalog:       jokes.Catalog(),
		Logger:        log,
	})

	errHandler := apperrors.NewHandler(log, cfg.Sentry.Enabled)
	handler := webhook.NewHandler(webhook.HandlerConfig{
		VerifyToken: cfg.Messenger.VerifyToken,
		AppSecret:   cfg.Messenger.AppSecret,
		Router:      router,
		ErrHandler:  errHandler,
		Logger:      log,
	})
	shutdown.Register("webhook-drain", handler.Wait)

	engine := newEngine(cfg, log, handler, checker)
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: engine,
	}

	if err := graceful.NewServer(log, srv, cfg.Server.ShutdownTimeout).ListenAndServe(ctx); err != nil {
		log.Error("http server stopped with error", slog.Any("error", err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := shutdown.Execute(shutdownCtx); err != nil {
		log.Error("shutdown finished with errors", slog.Any("error", err))
	}

	log.Info("asha bot stopped")
}
