package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/gitgauge/gitgauge/internal/adapters"
	"github.com/gitgauge/gitgauge/internal/analysis"
	"github.com/gitgauge/gitgauge/internal/cache"
	"github.com/gitgauge/gitgauge/internal/config"
	apperrors "github.com/gitgauge/gitgauge/internal/errors"
	"github.com/gitgauge/gitgauge/internal/monitoring"
	"github.com/gitgauge/gitgauge/internal/ratelimit"
	"github.com/gitgauge/gitgauge/internal/resilience"
	"github.com/gitgauge/gitgauge/internal/security"
	"github.com/gitgauge/gitgauge/internal/types"
)

type app struct {
	cfg     *config.Config
	engine  *analysis.Engine
	github  *adapters.GitHubAdapter
	reports *cache.ReportCache
	scans   *cache.ScanCounter
	metrics *monitoring.Metrics
	logger  *monitoring.Logger
	limiter *ratelimit.Limiter
}

func main() {
	// .env is optional, real environments set variables directly
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	limiterCfg := ratelimit.DefaultConfig()
	limiterCfg.RequestsPerMin = cfg.Server.RateLimitPerMin

	a := &app{
		cfg:     cfg,
		engine:  analysis.NewEngine(cfg.Scoring),
		github:  adapters.NewGitHubAdapter(cfg.Server.GitHubToken),
		reports: cache.NewReportCache(cfg.Server.CacheSize, cfg.Server.CacheTTL),
		scans:   cache.NewScanCounter(),
		metrics: monitoring.NewMetrics(),
		logger:  monitoring.NewLogger(),
		limiter: ratelimit.NewLimiter(limiterCfg),
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: a.setupRouter(),
	}

	go func() {
		slog.Info("Starting server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited")
}

func (a *app) setupRouter() *gin.Engine {
	r := gin.New()

	r.Use(monitoring.MonitoringMiddleware(a.metrics, a.logger))
	r.Use(apperrors.ErrorHandler())
	r.Use(apperrors.RecoveryHandler())
	r.Use(security.SecurityHeadersMiddleware())
	r.Use(security.RequestTimeoutMiddleware(a.cfg.Server.RequestTimeout))
	r.Use(ratelimit.Middleware(a.limiter))
	r.Use(cors.New(cors.Config{
		AllowOrigins: a.cfg.Server.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/health", a.handleHealth)
	r.POST("/api/analyze", a.handleAnalyze)

	return r
}

func (a *app) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"timestamp":      time.Now().Format(time.RFC3339),
		"github_breaker": a.github.BreakerState(),
		"metrics":        a.metrics.GetStats(),
	})
}

func (a *app) handleAnalyze(c *gin.Context) {
	start := time.Now()

	var req types.AnalyzeRequest
	if err := c.BindJSON(&req); err != nil {
		appErr := apperrors.NewValidationError("invalid request body")
		apperrors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	username, err := adapters.ParseInput(req.Input)
	if err != nil {
		appErr := apperrors.ToAppError(err)
		apperrors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	if report, ok := a.reports.Get(username); ok {
		a.metrics.IncrementCacheHit()
		report.ScanCount = a.scans.Next(username)
		a.logger.AnalysisLogger(username, report.Profile.Overall, len(report.Profile.Warnings), time.Since(start), true)
		c.JSON(http.StatusOK, report)
		return
	}
	a.metrics.IncrementCacheMiss()

	ctx := c.Request.Context()
	var bundle types.ProfileBundle
	fetchStart := time.Now()
	err = resilience.Retry(ctx, func() error {
		b, err := a.github.FetchProfile(ctx, username)
		if err != nil {
			return err
		}
		bundle = b
		return nil
	})
	a.metrics.IncrementGitHubCalls()
	a.logger.ExternalAPILogger("GitHub", "/users/"+username, time.Since(fetchStart), err == nil)
	if err != nil {
		appErr := apperrors.ToAppError(err)
		apperrors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	report, err := a.engine.Analyze(bundle, a.scans.Next(username))
	if err != nil {
		appErr := apperrors.ToAppError(err)
		apperrors.LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	a.reports.Set(username, report)
	a.metrics.IncrementScans()
	a.logger.AnalysisLogger(username, report.Profile.Overall, len(report.Profile.Warnings), time.Since(start), false)

	c.JSON(http.StatusOK, report)
}
