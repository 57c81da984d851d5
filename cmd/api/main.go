package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"duty-stats-service/internal/platform/config"
	"duty-stats-service/internal/platform/logging"
	"duty-stats-service/internal/stats/adapters/churchtools"
	statsHttp "duty-stats-service/internal/stats/adapters/http/fiber"
	statsRepoPg "duty-stats-service/internal/stats/adapters/postgres"
	"duty-stats-service/internal/stats/core/chart"
	"duty-stats-service/internal/stats/core/ports"
	"duty-stats-service/internal/stats/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"golang.org/x/text/language"

	_ "duty-stats-service/docs"
)

// @title Duty Stats Service API
// @version 1.0
// @description Per-person service assignment statistics for the roster dashboard.
// @BasePath /
func main() {
	// Config
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("config: %v", err)
	}

	log := logging.New(os.Stdout, cfg.LogLevel)
	slog.SetDefault(log)

	// Data source
	var (
		source  ports.EventSourcePort
		catalog ports.CatalogPort
	)

	switch cfg.EventSource {
	case config.SourcePostgres:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		db, err := statsRepoPg.Open(ctx, cfg.PostgresDSN)
		cancel()
		if err != nil {
			config.Exitf("postgres: %v", err)
		}
		defer db.Close()

		repo := statsRepoPg.NewRepository(statsRepoPg.NewSQLDB(db))
		source, catalog = repo, repo
	default:
		client := churchtools.NewClient(churchtools.Config{
			BaseURL: cfg.ChurchTools.BaseURL,
			Token:   cfg.ChurchTools.Token,
			Timeout: cfg.ChurchTools.Timeout,
		}, nil)
		source, catalog = client, client
	}

	var chartOpts chart.Options
	if cfg.ChartLocale != "none" {
		tag, err := language.Parse(cfg.ChartLocale)
		if err != nil {
			config.Exitf("invalid CHART_LOCALE %q: %v", cfg.ChartLocale, err)
		}
		chartOpts.Locale = tag
	}

	// Usecases
	getStatsUC := usecase.NewGetStatsUseCase(source, chartOpts, log)
	listEventsUC := usecase.NewListEventsUseCase(source)
	filterOptionsUC := usecase.NewGetFilterOptionsUseCase(catalog, source, usecase.FilterDefaults{
		ServiceIDs:      cfg.Filter.ServiceIDs,
		TimeframeMonths: cfg.Filter.TimeframeMonths,
		MinCount:        cfg.Filter.MinServicesCount,
	})

	// HTTP (Fiber) app + handlers
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
	}))

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	statsHandler := statsHttp.NewStatsHandler(getStatsUC, listEventsUC, filterOptionsUC, log)
	statsHandler.Register(app)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.HTTPAddr); err != nil {
			log.Error("fiber stopped", slog.String("error", err.Error()))
		}
	}()

	log.Info("server started",
		slog.String("addr", cfg.HTTPAddr),
		slog.String("event_source", cfg.EventSource),
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error("fiber shutdown error", slog.String("error", err.Error()))
	}

	log.Info("server exiting")
}
