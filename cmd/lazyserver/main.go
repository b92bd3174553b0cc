// Copyright © 2026 Yoshiki Shibata. All rights reserved.

// Command lazyserver is a small HTTP service exercising the lazy sequence
// engine over the network: it hosts a JSON pipeline-stage DSL endpoint, an
// async/SSE streaming variant, a health check, and Prometheus metrics.
// It gives a concrete home to the third-party dependencies the core
// library itself has no organic use for (see SPEC_FULL.md §9).
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/lazyseq/lazy/internal/obslog"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		panic(err)
	}

	obslog.SetLogger(zerolog.New(os.Stderr).Level(zerologLevel(cfg.LogLevel)).With().Timestamp().Logger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tel, err := setupTelemetry(ctx, cfg)
	if err != nil {
		obslog.Logger().Fatal().Err(err).Msg("telemetry setup failed")
	}
	defer tel.shutdown(ctx)

	router := newRouter(cfg, tel)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		obslog.Logger().Info().Str("addr", srv.Addr).Msg("lazyserver listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			obslog.Logger().Fatal().Err(err).Msg("server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		obslog.Logger().Error().Err(err).Msg("graceful shutdown failed")
	}
}

func newRouter(cfg Config, tel *telemetry) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(requestLogging())

	router.GET("/healthz", handleHealthz)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	pipeline := router.Group("/pipeline")
	pipeline.Use(requireBearerToken(cfg.JWTSecret))
	pipeline.POST("", handlePipeline(tel))
	pipeline.GET("/stream", handlePipelineStream(tel))

	return router
}
