package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"texttools/internal/infra/feed"
	"texttools/internal/infra/fetcher"
	"texttools/internal/infra/gtts"
	"texttools/internal/infra/hfimage"
	"texttools/internal/infra/pdftext"
	"texttools/internal/nlp/language"
	"texttools/pkg/config"

	fetchUC "texttools/internal/usecase/fetch"
	matchUC "texttools/internal/usecase/match"
	"texttools/internal/usecase/mediagen"
	"texttools/internal/usecase/summary"

	hhttp "texttools/internal/handler/http"
	hauth "texttools/internal/handler/http/auth"
	hmatch "texttools/internal/handler/http/match"
	hmedia "texttools/internal/handler/http/media"
	htexts "texttools/internal/handler/http/texts"
	"texttools/internal/handler/http/requestid"
	"texttools/internal/observability/logging"
	"texttools/internal/observability/tracing"
)

func main() {
	logger := initLogger()

	resources, err := language.English()
	if err != nil {
		logger.Error("failed to load language resources", slog.Any("error", err))
		os.Exit(1)
	}

	version := getVersion()
	handler, err := setupServer(logger, resources, version)
	if err != nil {
		logger.Error("server setup failed", slog.Any("error", err))
		os.Exit(1)
	}

	runServer(logger, handler, version)
}

// initLogger initializes and returns a structured logger based on environment configuration.
func initLogger() *slog.Logger {
	logger := logging.NewLogger()
	slog.SetDefault(logger)
	return logger
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// setupServer wires the services and returns the fully decorated HTTP handler.
func setupServer(logger *slog.Logger, resources *language.Resources, version string) (http.Handler, error) {
	summarySvc := summary.NewService(resources)

	fetchCfg, err := fetcher.LoadConfigFromEnv()
	if err != nil {
		return nil, err
	}
	articleFetcher := fetcher.NewReadabilityFetcher(fetchCfg)

	feedTimeout := config.GetEnvDuration("FEED_FETCH_TIMEOUT", 15*time.Second)
	if err := config.ValidatePositiveDuration(feedTimeout); err != nil {
		return nil, fmt.Errorf("FEED_FETCH_TIMEOUT: %w", err)
	}
	feedFetcher := feed.NewGofeedFetcher(feedTimeout)
	fetchSvc := fetchUC.NewService(articleFetcher, feedFetcher, summarySvc)

	matchSvc := matchUC.NewService(pdftext.NewExtractor(), resources)

	mediaSvc, err := setupMediaService(logger)
	if err != nil {
		return nil, err
	}
	if mediaSvc != nil {
		// Token auth only guards the media endpoints; a summarize-only
		// deployment must not be forced to configure credentials.
		if err := hauth.ValidateStartupConfig(); err != nil {
			return nil, fmt.Errorf("auth configuration: %w", err)
		}
	}

	mux := setupRoutes(summarySvc, fetchSvc, matchSvc, mediaSvc, resources, version)
	return applyMiddleware(logger, mux), nil
}

// setupMediaService builds the media generation service. The image
// generator needs an API token; without one the media endpoints are
// disabled rather than failing every request at runtime.
func setupMediaService(logger *slog.Logger) (*mediagen.Service, error) {
	imageClient, err := hfimage.NewClientFromEnv()
	if err != nil {
		if !errors.Is(err, hfimage.ErrMissingToken) {
			return nil, err
		}
		logger.Warn("HF_API_TOKEN not set, media endpoints disabled")
		return nil, nil
	}

	return mediagen.NewService(imageClient, gtts.NewClientFromEnv()), nil
}

// setupRoutes registers all HTTP routes (public and protected).
func setupRoutes(
	summarySvc *summary.Service,
	fetchSvc *fetchUC.Service,
	matchSvc *matchUC.Service,
	mediaSvc *mediagen.Service,
	resources *language.Resources,
	version string,
) *http.ServeMux {
	mux := http.NewServeMux()

	mux.Handle("GET /health", &hhttp.HealthHandler{
		Version:   version,
		StopWords: resources.StopWordCount(),
	})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{StopWords: resources.StopWordCount()})
	mux.Handle("GET /live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	htexts.Register(mux, summarySvc, fetchSvc)
	hmatch.Register(mux, matchSvc)
	if mediaSvc != nil {
		hmedia.Register(mux, mediaSvc)

		// The token endpoint is a credential oracle; keep it on a tight
		// per-IP limit. It only exists when something requires a token.
		authRateLimiter := hhttp.NewRateLimiter(5, 1*time.Minute)
		mux.Handle("POST /auth/token", authRateLimiter.Limit(hauth.TokenHandler()))
	}

	return mux
}

// applyMiddleware wraps the handler with the middleware chain.
// Order (outermost first): Request ID → Tracing → Recovery → Logging →
// Body Limit → Metrics.
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	maxBody := int64(config.GetEnvInt("MAX_REQUEST_BODY", 10<<20))

	chain := handler
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.LimitRequestBody(maxBody)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)

	return chain
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, handler http.Handler, version string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr := config.GetEnvString("LISTEN_ADDR", ":8080")

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
