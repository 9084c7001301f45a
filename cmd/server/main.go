package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-dashboard-api/internal/config"
	"github.com/yukikurage/project-dashboard-api/internal/database"
	"github.com/yukikurage/project-dashboard-api/internal/handlers"
	applog "github.com/yukikurage/project-dashboard-api/internal/logger"
	"github.com/yukikurage/project-dashboard-api/internal/middleware"
	"github.com/yukikurage/project-dashboard-api/internal/recordstore"
	"github.com/yukikurage/project-dashboard-api/internal/repository"
	"github.com/yukikurage/project-dashboard-api/internal/repository/memory"
	"github.com/yukikurage/project-dashboard-api/internal/repository/remote"
	"github.com/yukikurage/project-dashboard-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	applog.Configure(cfg.LogLevel, cfg.LogFormat)
	if err := cfg.Validate(); err != nil {
		applog.Log.WithError(err).Fatal("Invalid configuration")
	}

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	repos, err := openRepositories(cfg)
	if err != nil {
		applog.Log.WithError(err).WithField("backend", cfg.BackendMode).Fatal("Failed to initialize store backend")
	}

	// Initialize AI service
	var drafter services.TaskDrafter
	if cfg.OpenAIAPIKey != "" {
		drafter = services.NewAIService(cfg.OpenAIAPIKey)
	} else {
		applog.Log.Warn("OPENAI_API_KEY is not set, task suggestions are disabled")
	}

	svc := services.New(repos, drafter)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(cors.New(corsConfig(cfg.CORSAllowedOrigins)))

	handlers.RegisterRoutes(r, svc, cfg.BackendMode)

	// Start server
	applog.Log.WithField("port", cfg.Port).WithField("backend", cfg.BackendMode).Info("Server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		applog.Log.WithError(err).Fatal("Failed to start server")
	}
}

// openRepositories builds the repositories for the configured backend
func openRepositories(cfg *config.Config) (repository.Repositories, error) {
	switch cfg.BackendMode {
	case config.BackendDatabase:
		if err := database.Connect(cfg); err != nil {
			return repository.Repositories{}, err
		}
		if err := database.Migrate(database.GetDB()); err != nil {
			return repository.Repositories{}, err
		}
		return repository.NewGormRepositories(database.GetDB()), nil

	case config.BackendRemote:
		client := recordstore.NewClient(recordstore.Config{
			BaseURL:           cfg.RecordStoreBaseURL,
			ProjectID:         cfg.RecordStoreProjectID,
			PublicKey:         cfg.RecordStorePublicKey,
			Timeout:           cfg.RecordStoreTimeout,
			RequestsPerSecond: cfg.RecordStoreRPS,
		})
		return remote.NewRepositories(client), nil

	default:
		data := memory.Dataset{}
		if cfg.SeedMockData {
			seeded, err := memory.SeedDataset()
			if err != nil {
				return repository.Repositories{}, err
			}
			data = seeded
		}
		applog.Log.WithField("projects", len(data.Projects)).Info("Using in-memory store")
		return memory.NewRepositories(data), nil
	}
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "X-Request-ID")
	cfg.ExposeHeaders = []string{"X-Request-ID"}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
