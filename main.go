package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"

	"github.com/yourorg/listing-studio/gemini"
	"github.com/yourorg/listing-studio/internal/config"
	"github.com/yourorg/listing-studio/internal/copywriter"
	"github.com/yourorg/listing-studio/internal/events"
	"github.com/yourorg/listing-studio/internal/logger"
	"github.com/yourorg/listing-studio/internal/metrics"
	"github.com/yourorg/listing-studio/internal/redisx"
	"github.com/yourorg/listing-studio/internal/rendercache"
	"github.com/yourorg/listing-studio/internal/renderer"
	"github.com/yourorg/listing-studio/internal/store"
	"github.com/yourorg/listing-studio/internal/warm"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		boot := zerolog.New(os.Stderr)
		boot.Error().Err(err).Msg("load config")
		return 1
	}
	log := logger.New(cfg.LogLevel, cfg.LogPretty)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m, err := metrics.New(reg)
	if err != nil {
		log.Error().Err(err).Msg("register metrics")
		return 1
	}

	st := store.New()
	if cfg.SeedFile != "" {
		err = st.LoadSeedFile(cfg.SeedFile, time.Now())
	} else {
		err = st.LoadDefaultSeed(time.Now())
	}
	if err != nil {
		log.Error().Err(err).Str("seed_file", cfg.SeedFile).Msg("load seed")
		return 1
	}

	var backend rendercache.Backend = rendercache.NewMemory()
	if cfg.RedisAddr != "" {
		rc := redisx.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		defer rc.Close()
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		if err := rc.Ping(pingCtx); err != nil {
			log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unavailable, using in-memory render cache")
		} else {
			backend = rc
		}
		cancel()
	}
	cache := rendercache.New(backend, cfg.RenderCacheTTL, m, log)

	opts := []gemini.Option{gemini.WithModel(cfg.GeminiModel), gemini.WithRateLimit(cfg.AIRequestsPerMinute)}
	if cfg.GeminiBaseURL != "" {
		opts = append(opts, gemini.WithBaseURL(cfg.GeminiBaseURL))
	}
	ai := gemini.NewClient(cfg.GeminiAPIKey, opts...)
	if cfg.GeminiAPIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY not set; captions and rewrites will use fallbacks")
	}
	cw := copywriter.New(ai, log, m)

	rend := &renderer.Renderer{Brand: st.Brand, Templates: st.Templates, Cache: cache, Metrics: m}
	pub := events.NewInMemory(256)

	warmDone := make(chan struct{})
	if cfg.WarmWorkers > 0 {
		w := &warm.Warmer{Pub: pub, Listings: st.Listings, Previews: rend, Metrics: m, Log: log, Workers: cfg.WarmWorkers}
		go func() {
			w.Run(ctx)
			close(warmDone)
		}()
	} else {
		close(warmDone)
	}

	router := BuildRouter(RouterDeps{
		Store:       st,
		Renderer:    rend,
		Copy:        cw,
		Pub:         pub,
		Gatherer:    reg,
		Log:         log,
		AIPerMinute: cfg.AIRequestsPerMinute,
	})

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Int("listings", st.Listings.Len()).Msg("listing-studio listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	case err := <-errCh:
		log.Error().Err(err).Msg("http server error")
		stop()
		<-warmDone
		return 1
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
		return 1
	}
	<-warmDone
	log.Info().Msg("server stopped")
	return 0
}
