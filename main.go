package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv" // Para cargar variables de entorno desde .env
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/kelydev/explorador/config"
	"github.com/kelydev/explorador/controllers"
	"github.com/kelydev/explorador/database"
	"github.com/kelydev/explorador/metrics"
	"github.com/kelydev/explorador/navigation"
	"github.com/kelydev/explorador/routes"
	"github.com/kelydev/explorador/scopus"
)

func main() {
	// Cargar variables de entorno desde .env
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}
	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}
	defer logger.Sync()

	logger.Info("starting server...")

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// An unreachable endpoint is not fatal: pages answer with an error until it recovers.
	pingCtx, cancel := context.WithTimeout(ctx, cfg.SparqlTimeout)
	db, err := database.Connect(pingCtx, cfg, logger, m)
	cancel()
	if err != nil {
		logger.Warn("sparql endpoint not reachable at startup", zap.Error(err))
	}

	var scopusClient controllers.ScopusSearcher
	if cfg.ScopusAPIKey != "" {
		scopusClient = scopus.NewClient(cfg.ScopusBaseURL, cfg.ScopusAPIKey, cfg.ScopusAfiliaciones, cfg.SparqlTimeout, logger, m)
	} else {
		logger.Warn("SCOPUS_API_KEY not set, keyword filter disabled")
	}

	deps := &controllers.Deps{
		DB:             db,
		Scopus:         scopusClient,
		Centro:         cfg.Centro,
		Logger:         logger,
		Metrics:        m,
		Nav:            navigation.NewStore(cfg.NavMaxVisitors, cfg.NavTTL),
		SearchDebounce: cfg.SearchDebounce,
		AllowedOrigins: cfg.AllowedOrigins,
	}
	r := routes.SetupRoutes(deps, db, reg)

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Content-Disposition", "X-Request-ID"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           c.Handler(r),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("error shutting down server", zap.Error(err))
		}
	}()

	logger.Info("listening", zap.String("port", cfg.Port), zap.String("centro", cfg.Centro))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server failed", zap.Error(err))
	}
	logger.Info("server stopped")
}
