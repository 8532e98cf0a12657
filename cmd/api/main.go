package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	_ "github.com/redmonkez12/learnhub-api/docs" // Swagger docs (generated)
	"github.com/redmonkez12/learnhub-api/internal/auth"
	"github.com/redmonkez12/learnhub-api/internal/config"
	"github.com/redmonkez12/learnhub-api/internal/course"
	"github.com/redmonkez12/learnhub-api/internal/database"
	httpServer "github.com/redmonkez12/learnhub-api/internal/http"
	"github.com/redmonkez12/learnhub-api/internal/imagehost"
	"github.com/redmonkez12/learnhub-api/internal/logging"
	"github.com/redmonkez12/learnhub-api/internal/memstore"
	"github.com/redmonkez12/learnhub-api/internal/metrics"
	"github.com/redmonkez12/learnhub-api/internal/user"
)

// @title           LearnHub API
// @version         1.0
// @description     Accounts and course catalog for the LearnHub online-learning platform.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:5000
// @BasePath  /

func main() {
	if err := run(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.NewLogger(cfg.Server.IsDevelopment())
	logger.Info("starting application",
		"env", cfg.Server.Env,
		"port", cfg.Server.Port,
		"store", cfg.Store.Driver,
		"token_strategy", cfg.Auth.TokenStrategy,
	)

	// One store connection shared by every handler
	repos, err := openStore(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	defer repos.close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := metrics.NewCollector(registry)

	tokenService, err := newTokenService(cfg.Auth)
	if err != nil {
		return fmt.Errorf("failed to initialize token service: %w", err)
	}

	hasher, err := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	if err != nil {
		return fmt.Errorf("failed to initialize password hasher: %w", err)
	}

	if cfg.ImageHost.APIKey == "" {
		logger.Warn("IMGBB_API_KEY is not set, course creation will fail")
	}
	images := imagehost.NewClient(cfg.ImageHost.URL, cfg.ImageHost.APIKey, cfg.ImageHost.Timeout, collector)

	authService := auth.NewService(repos.users, hasher, tokenService, collector, logger, cfg.Auth.TokenDuration)
	courseService := course.NewService(repos.courses, images, logger)

	router := httpServer.NewRouter(cfg, httpServer.Handlers{
		Auth:           auth.NewHandler(authService),
		Courses:        course.NewHandler(courseService),
		Identity:       auth.NewMiddleware(tokenService),
		Metrics:        collector,
		MetricsHandler: metrics.Handler(registry),
	}, logger)

	server := httpServer.NewServer(
		":"+cfg.Server.Port,
		router,
		cfg.Server.ReadTimeout,
		cfg.Server.WriteTimeout,
		logger,
	)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.Start()
	}()

	// Wait for interrupt signal or server error
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		logger.Info("received signal", "signal", sig.String())

		// Graceful shutdown with timeout
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

type repositories struct {
	users   user.Repository
	courses course.Repository
	close   func()
}

// openStore connects the configured backend and builds both repositories on it
func openStore(ctx context.Context, cfg *config.Config) (*repositories, error) {
	switch cfg.Store.Driver {
	case config.StoreMongo:
		client, err := database.ConnectMongo(ctx, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		db := client.Database(cfg.Mongo.Database)
		return &repositories{
			users:   user.NewMongoRepository(db.Collection(database.UsersCollection)),
			courses: course.NewMongoRepository(db.Collection(database.CoursesCollection)),
			close:   func() { _ = client.Disconnect(context.Background()) },
		}, nil

	case config.StorePostgres:
		db, err := database.OpenPostgres(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		if err := database.EnsureTables(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		return &repositories{
			users:   user.NewBunRepository(db),
			courses: course.NewBunRepository(db),
			close:   func() { _ = db.Close() },
		}, nil

	case config.StoreMemory:
		store := memstore.New()
		return &repositories{
			users:   store.Users(),
			courses: store.Courses(),
			close:   func() {},
		}, nil
	}

	return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}

func newTokenService(cfg config.AuthConfig) (auth.TokenService, error) {
	if cfg.TokenStrategy == config.TokenPaseto {
		return auth.NewPasetoService(cfg.TokenSecret)
	}
	return auth.NewJWTService(cfg.TokenSecret)
}
