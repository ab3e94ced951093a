// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"tcc_companion/internal/catalog"
	"tcc_companion/internal/config"
	"tcc_companion/internal/handlers"
	"tcc_companion/internal/middleware"
	"tcc_companion/internal/repository"
	"tcc_companion/internal/service"
	"tcc_companion/internal/sheets"
	"tcc_companion/internal/store"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// Temporary logger until the config tells us level and format.
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...")

	// Local archive database.
	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()
	if err := repository.Migrate(db); err != nil {
		slog.Error("Error migrating archive schema", slog.Any("error", err))
		os.Exit(1)
	}

	// Static protocol catalog, loaded once and immutable afterwards.
	cat, err := catalog.Load(config.Cfg.App.CatalogPath)
	if err != nil {
		slog.Error("Error loading protocol catalog", slog.Any("error", err))
		os.Exit(1)
	}
	slog.Info("Protocol catalog loaded", slog.Int("modules", len(cat.Codes())))

	// Remote sync adapter. Without credentials the app still runs: records
	// stay local-only and progress falls back to the bootstrap module.
	var adapter sheets.Adapter
	googleAdapter, err := sheets.NewGoogleAdapter(
		context.Background(),
		config.Cfg.Sheets.SpreadsheetID,
		config.Cfg.Sheets.CredentialsFile,
		time.Duration(config.Cfg.Sheets.TimeoutSeconds)*time.Second,
		logger,
	)
	if err != nil {
		slog.Warn("Remote store unavailable, running local-only", slog.Any("error", err))
		adapter = sheets.Disabled()
	} else {
		adapter = googleAdapter
		// Provision tabs once at startup, decoupled from the append path.
		provisionCtx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		if err := sheets.Provision(provisionCtx, adapter); err != nil {
			slog.Warn("Remote tab provisioning incomplete", slog.Any("error", err))
		}
		cancel()
	}

	// Dependency injection.
	sessions := store.NewSessions()
	archiveRepo := repository.NewGormArchiveRepository()

	recordService := service.NewRecordService(sessions, db, archiveRepo, adapter)
	progressService := service.NewProgressService(adapter, cat)
	moduleService := service.NewModuleService(cat, progressService, config.Cfg.App.AssetsDir)
	reportService := service.NewReportService(sessions)

	recordHandler := handlers.NewRecordHandler(recordService)
	progressHandler := handlers.NewProgressHandler(progressService)
	moduleHandler := handlers.NewModuleHandler(moduleService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Router.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.PatientContextMiddleware)

		r.Route("/records", func(r chi.Router) {
			r.Get("/", recordHandler.GetHistory)
			r.Post("/scales", recordHandler.PostScale)
			r.Post("/sleep", recordHandler.PostSleep)
			r.Post("/activities", recordHandler.PostActivity)
			r.Post("/restructuring", recordHandler.PostRestructuring)
			r.Post("/balance", recordHandler.PostBalance)
			r.Get("/{kind}", recordHandler.GetRecords)
		})

		r.Get("/progress", progressHandler.GetProgress)
		r.Get("/modules", moduleHandler.GetModules)
		r.Get("/report", reportHandler.GetReport)
	})

	// Health check.
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sqlDB, err := db.DB()
		if err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not get DB object", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
