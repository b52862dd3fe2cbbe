package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"bandcatalog/internal/catalog"
	"bandcatalog/internal/httpx"
	"bandcatalog/internal/view"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	log := logger.New("main").Function("main")

	loadEnvFiles()
	cfg, err := loadConfig()
	if err != nil {
		log.Er("cannot load configuration", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	source, closeSource, err := openSource(ctx, cfg)
	if err != nil {
		log.Er("cannot open catalog source", err, "source", cfg.Source)
		os.Exit(1)
	}
	defer closeSource()

	svc, err := catalog.NewService(source, cfg.PageSize)
	if err != nil {
		log.Er("cannot create catalog service", err)
		os.Exit(1)
	}
	renderer, err := view.NewRenderer(cfg.ShowSongs)
	if err != nil {
		log.Er("cannot parse templates", err)
		os.Exit(1)
	}

	handler := catalog.NewHTTPHandler(svc, renderer, cfg.LoadTimeout)
	rateLimiter := httpx.NewRateLimitMiddleware(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst)

	httpServer := &http.Server{
		Addr: cfg.Addr,
		Handler: newRouter(handler,
			httpx.RecoveryMiddleware,
			httpx.RequestIDMiddleware,
			httpx.AccessLogMiddleware,
			httpx.SecurityHeadersMiddleware(cfg.EnableHSTS),
			httpx.CORSMiddleware(cfg.AllowedOrigins),
			rateLimiter.Middleware,
		),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Er("graceful shutdown failed", err)
		}
	}()

	log.Info("starting server", "addr", cfg.Addr, "source", cfg.Source, "page_size", cfg.PageSize)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Er("server error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

func openSource(ctx context.Context, cfg Config) (catalog.Source, func(), error) {
	if cfg.Source != sourcePostgres {
		return catalog.NewFileSource(cfg.CatalogPath), func() {}, nil
	}

	pool, err := openDB(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, nil, err
	}
	return catalog.NewPostgresSource(pool, cfg.CatalogName, cfg.LoadTimeout), pool.Close, nil
}

func openDB(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	log := logger.New("main").Function("openDB")

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, log.Err("cannot create db pool", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, log.Err("cannot ping database", err, "dsn", redactDSN(dsn))
	}
	log.Info("database connection OK")
	return pool, nil
}

func redactDSN(dsn string) string {
	const marker = "://"
	start := strings.Index(dsn, marker)
	if start < 0 {
		return dsn
	}
	start += len(marker)
	end := strings.Index(dsn[start:], "@")
	if end < 0 {
		return dsn
	}
	return dsn[:start] + "***" + dsn[start+end:]
}
