// Package main is the entry point for the travel recommendation server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Abdullahever182/travel-recomend/internal/config"
	"github.com/Abdullahever182/travel-recomend/internal/handler"
	"github.com/Abdullahever182/travel-recomend/internal/handler/gen"
	"github.com/Abdullahever182/travel-recomend/internal/middleware"
	"github.com/Abdullahever182/travel-recomend/internal/render"
	"github.com/Abdullahever182/travel-recomend/internal/repo"
	"github.com/Abdullahever182/travel-recomend/internal/service"
	"github.com/Abdullahever182/travel-recomend/spec"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Dataset ----------------------------------------------------------
	// The dataset is loaded once in the background. Until it completes,
	// searches answer with a "still loading" state instead of results.
	datasets, closeSource, err := newDatasetRepo(ctx, cfg)
	if err != nil {
		slog.Error("failed to open dataset source", "source", cfg.Source, "error", err)
		os.Exit(1)
	}
	defer closeSource()

	catalog := service.NewCatalog(logger)
	go func() {
		slog.Info("loading dataset", "source", cfg.Source)
		// Failures are logged by the catalog and surfaced to users as a hint.
		_ = catalog.Load(ctx, datasets)
	}()

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer → CORS → body limit.
	cards := render.NewCardRenderer(time.Now)
	pages, err := render.NewPageRenderer(cards)
	if err != nil {
		slog.Error("failed to parse page template", "error", err)
		os.Exit(1)
	}
	srv := handler.NewServer(service.NewSearchService(catalog), cards, pages)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(spec.OpenAPI)
	})
	gen.HandlerFromMux(gen.NewStrictHandler(srv, nil), r)

	// --- HTTP Server ------------------------------------------------------
	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// newDatasetRepo builds the DatasetRepo selected by cfg.Source.
// The returned close function releases any connection pool and is always non-nil.
func newDatasetRepo(ctx context.Context, cfg config.Config) (repo.DatasetRepo, func(), error) {
	switch cfg.Source {
	case config.SourceHTTP:
		return repo.NewHTTPRepo(cfg.DatasetURL, &http.Client{}), func() {}, nil
	case config.SourcePostgres:
		// pgxpool.New does not open connections; the dataset load's first query does.
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return repo.NewPostgresRepo(pool), pool.Close, nil
	default:
		return repo.NewFileRepo(cfg.DatasetPath), func() {}, nil
	}
}
