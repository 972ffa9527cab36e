package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Hans010101/Crypto-Trading/docs"
	"github.com/Hans010101/Crypto-Trading/internal/binance"
	"github.com/Hans010101/Crypto-Trading/internal/config"
	"github.com/Hans010101/Crypto-Trading/internal/database"
	"github.com/Hans010101/Crypto-Trading/internal/database/migration"
	"github.com/Hans010101/Crypto-Trading/internal/feargreed"
	"github.com/Hans010101/Crypto-Trading/internal/gridconf"
	handlers "github.com/Hans010101/Crypto-Trading/internal/http/handler"
	"github.com/Hans010101/Crypto-Trading/internal/http/middleware"
	"github.com/Hans010101/Crypto-Trading/internal/httpclient"
	"github.com/Hans010101/Crypto-Trading/internal/otel"
	"github.com/Hans010101/Crypto-Trading/internal/repository"
	"github.com/Hans010101/Crypto-Trading/internal/repository/postgres"
	"github.com/Hans010101/Crypto-Trading/internal/service"
)

// @title Crypto Trading Dashboard API
// @version 2.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := time.Local

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Tracing is optional; Init degrades to a noop provider on exporter errors
	otelShutdown, err := otel.Init(ctx, loc)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}

	// The alert store is optional. Without DB_HOST the dashboard serves its
	// built-in sample alerts and rejects mutations.
	var db *sql.DB
	var alertRepo repository.AlertRepository
	if cfg.Database.Enabled() {
		db, err = database.NewPostgres(cfg.Database)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		defer db.Close()

		mctx, cancel := context.WithTimeout(ctx, 30*time.Second)
		if err := migration.EnsureMigrated(mctx, db, loc, cfg.Database.Host); err != nil {
			cancel()
			log.Fatalf("failed to run migrations: %v", err)
		}
		cancel()

		alertRepo = postgres.NewAlertPostgres(db)
	} else {
		log.Printf("alerts: no database configured, serving sample data")
	}

	// One pooled HTTP client is shared by every upstream fetch
	hcCfg := httpclient.DefaultConfig()
	hcCfg.Timeout = time.Duration(cfg.Upstream.TimeoutSec) * time.Second
	hc := httpclient.New(hcCfg)

	binanceClient := binance.NewClient(cfg.Upstream.BinanceBaseURL, hc)
	fngClient := feargreed.NewClient(cfg.Upstream.FearGreedBaseURL, hc)

	marketSvc := service.NewMarketService(binanceClient, fngClient)
	defer marketSvc.Stop()
	gridSvc := service.NewGridService(binanceClient, gridconf.NewLoader(cfg.GridConfigDir))
	alertSvc := service.NewAlertService(alertRepo)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())
	// The UI may be hosted separately, keep the API open for browsers
	app.Use(cors.New())
	app.Use(otelfiber.Middleware())

	promMW, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(promMW.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, db, marketSvc, gridSvc, alertSvc)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	go func() {
		if err := app.Listen(cfg.ListenAddr()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	stop()

	log.Printf("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("server shutdown: %v", err)
	}

	sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := otelShutdown(sctx); err != nil {
		log.Printf("tracer shutdown: %v", err)
	}
}
