package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/microsoft"

	"github.com/simonindia/office-assistant/internal/adapters/database"
	"github.com/simonindia/office-assistant/internal/api/handlers"
	"github.com/simonindia/office-assistant/internal/api/routes"
	"github.com/simonindia/office-assistant/internal/api/session"
	"github.com/simonindia/office-assistant/internal/application/services"
	"github.com/simonindia/office-assistant/internal/domain/providers"
	"github.com/simonindia/office-assistant/internal/infrastructure/clients/gemini"
	"github.com/simonindia/office-assistant/internal/infrastructure/clients/graph"
	"github.com/simonindia/office-assistant/internal/infrastructure/clients/sqlite"
	"github.com/simonindia/office-assistant/internal/infrastructure/observability"
	"github.com/simonindia/office-assistant/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger(cfg)
	logger := observability.GetLogger()

	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					logger.Error().Err(err).Msg("Error shutting down OpenTelemetry")
				}
			}()
			logger.Info().Msg("OpenTelemetry initialized successfully")
		}
	}

	// Initialize metrics
	metrics, err := observability.InitMetrics()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize metrics")
	}

	// Initialize database client
	dbClient, err := sqlite.NewClient(&cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize SQLite client")
	}
	defer dbClient.Close()
	logger.Info().Str("path", cfg.Database.Path).Msg("SQLite client initialized successfully")

	location, err := time.LoadLocation(cfg.Microsoft.Timezone)
	if err != nil {
		logger.Fatal().Err(err).Str("timezone", cfg.Microsoft.Timezone).Msg("Failed to load display timezone")
	}

	// Initialize adapters
	priorityAdapter := database.NewPriorityAdapter(dbClient)
	projectAdapter := database.NewProjectAdapter(dbClient)
	meetingAdapter := database.NewMeetingAdapter(dbClient)
	protocolAdapter := database.NewProtocolAdapter(dbClient)
	timeSplitAdapter := database.NewTimeSplitAdapter(dbClient)
	briefAdapter := database.NewDailyBriefAdapter(dbClient)
	memoryAdapter := database.NewLearningMemoryAdapter(dbClient)

	// Initialize the text model provider. The server runs without it;
	// AI endpoints then report a configuration error.
	var textModel providers.TextModelProvider
	if cfg.Gemini.APIKey == "" {
		logger.Warn().Msg("GEMINI_API_KEY is not set; brief synthesis and inbox snapshots disabled")
	} else {
		geminiClient, err := gemini.NewClient(ctx, &cfg.Gemini)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to initialize Gemini client")
		} else {
			textModel = geminiClient
			logger.Info().Str("model", cfg.Gemini.Model).Msg("Gemini client initialized successfully")
		}
	}

	graphClient := graph.NewClient(cfg.Microsoft.Timezone)

	// Session cookies and the delegated OAuth flow
	sessionManager := session.NewManager(cfg.Session.Secret)
	oauthConfig := &oauth2.Config{
		ClientID:     cfg.Microsoft.ClientID,
		ClientSecret: cfg.Microsoft.ClientSecret,
		RedirectURL:  cfg.Microsoft.RedirectURL,
		Scopes:       cfg.Microsoft.Scopes,
		Endpoint:     microsoft.AzureADEndpoint(cfg.Microsoft.TenantID),
	}

	// Initialize services
	briefingService := services.NewBriefingService(memoryAdapter, textModel)
	snapshotService := services.NewSnapshotService(graphClient, textModel, location)

	// Initialize handlers
	priorityHandler := handlers.NewPriorityHandler(priorityAdapter)
	projectHandler := handlers.NewProjectHandler(projectAdapter)
	meetingHandler := handlers.NewMeetingHandler(meetingAdapter, location)
	protocolHandler := handlers.NewProtocolHandler(protocolAdapter)
	timeSplitHandler := handlers.NewTimeSplitHandler(timeSplitAdapter)
	briefHandler := handlers.NewDailyBriefHandler(briefAdapter, location)
	memoryHandler := handlers.NewLearningMemoryHandler(memoryAdapter)
	outlookHandler := handlers.NewOutlookHandler(sessionManager, oauthConfig, graphClient, location)
	briefingHandler := handlers.NewBriefingHandler(briefingService)
	snapshotHandler := handlers.NewSnapshotHandler(sessionManager, snapshotService, location)

	// Set up router
	router := routes.NewRouter(
		priorityHandler,
		projectHandler,
		meetingHandler,
		protocolHandler,
		timeSplitHandler,
		briefHandler,
		memoryHandler,
		outlookHandler,
		briefingHandler,
		snapshotHandler,
		cfg.Server.StaticDir,
		cfg.Server.AllowedOrigins,
		metrics,
	)
	handler := router.SetupRoutes()

	// Create HTTP server
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:        serverAddr,
		Handler:     handler,
		ReadTimeout: 15 * time.Second,
		// Inbox snapshots summarize messages sequentially and can
		// run long on a full window.
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info().Str("addr", serverAddr).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Server shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Error during server shutdown")
	}
}
