// Package classification Clinic Calendar Service.
//
// # Scheduling backend of a single practitioner's clinic calendar
//
// Terms Of Service:
//
// there are no TOS at this moment, use at your own risk we take no responsibility
//
//	Version: 0.1.0
//	License: TODO
//
//	Consumes:
//	  - application/json
//	  - text/calendar
//
//	Produces:
//	  - application/json
//	  - text/calendar
//	  - text/event-stream
//
// swagger:meta
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/clinicdesk/calendar/internal/handler"
	"github.com/clinicdesk/calendar/internal/log"
	"github.com/clinicdesk/calendar/internal/middleware"
	"github.com/clinicdesk/calendar/internal/server"
	"github.com/clinicdesk/calendar/pkg/calendar"
	"github.com/clinicdesk/calendar/pkg/config"
	"github.com/clinicdesk/calendar/pkg/demo"
	"github.com/clinicdesk/calendar/pkg/event"
	"github.com/clinicdesk/calendar/pkg/health"
	"github.com/clinicdesk/calendar/pkg/note"
	"github.com/clinicdesk/calendar/pkg/profile"
	"github.com/clinicdesk/calendar/pkg/reminder"
	"github.com/clinicdesk/calendar/pkg/search"
	"github.com/clinicdesk/calendar/pkg/storage"
	"github.com/clinicdesk/calendar/pkg/stream"
	"github.com/clinicdesk/calendar/pkg/tracing"
	"github.com/clinicdesk/calendar/pkg/weather"
	"github.com/gin-gonic/gin"
	"github.com/go-mail/mail"
	"github.com/go-redis/redis"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("Service failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.New()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := handler.RegisterValidation(); err != nil {
		return err
	}

	shutdownTracing, err := tracing.NewTracerProvider(ctx, cfg.Tracing.JaegerEndpoint, cfg.Tracing.ServiceName)
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logger.Error("Failed to flush traces", "error", err)
		}
	}()

	location := cfg.Location()
	checks := make(map[string]health.Checker)

	var (
		eventRepository   event.Repository
		noteRepository    note.Repository
		profileRepository profile.Repository
	)
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err := storage.NewDatabase(logger, cfg.Postgresql)
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("failed to get database connection pool: %v", err)
		}
		defer sqlDB.Close()
		checks["database"] = sqlDB.PingContext

		eventRepository = event.NewRepository(db)
		noteRepository = note.NewRepository(db)
		profileRepository = profile.NewRepository(db)
	default:
		eventRepository = event.NewMemoryRepository()
		noteRepository = note.NewMemoryRepository()
		profileRepository = profile.NewMemoryRepository()
	}

	var redisClient *redis.Client
	if cfg.RedisEnabled() {
		redisClient, err = storage.NewRedis(cfg.Redis)
		if err != nil {
			return err
		}
		defer redisClient.Close()
		checks["redis"] = func(ctx context.Context) error {
			return redisClient.WithContext(ctx).Ping().Err()
		}
	}

	broker := stream.NewBroker()
	eventService := event.NewService(eventRepository, broker)
	noteService := note.NewService(noteRepository, broker)
	profileService := profile.NewService(profileRepository)

	if cfg.SeedDemoData {
		seeder := demo.NewSeeder(logger, profileService, eventService, noteService)
		if err := seeder.Seed(ctx, time.Now(), location); err != nil {
			return err
		}
	}

	weatherProvider := newWeatherProvider(cfg, logger, redisClient)
	googleClient := search.NewGoogleClient(cfg.Search.GoogleBaseURL, cfg.Search.GoogleAPIKey, cfg.Search.GoogleSearchEngineID)
	openAIClient := search.NewOpenAIClient(cfg.Search.OpenAIBaseURL, cfg.Search.OpenAIAPIKey, cfg.Search.OpenAIModel)
	rateLimiter := middleware.NewRateLimiter(ctx, cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)

	engine := server.GetEngine(logger, cfg.BasePath, cfg.Tracing.ServiceName)
	api := engine.Group(cfg.BasePath)
	health.Routes(api, health.NewHandler(checks))
	calendar.Routes(api, calendar.NewHandler(location))
	event.Routes(api, event.NewHandler(eventService, location))
	note.Routes(api, note.NewHandler(noteService, location))
	profile.Routes(api, profile.NewHandler(profileService))
	stream.Routes(api, stream.NewHandler(logger, broker))
	search.Routes(api, middleware.RateLimit(rateLimiter), search.NewHandler(logger, googleClient, openAIClient))
	weather.Routes(api, weather.NewHandler(logger, weatherProvider))

	httpServer := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           engine.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.InfoContext(ctx, "Listening", "addr", httpServer.Addr, "basePath", cfg.BasePath, "storage", cfg.StorageDriver)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server failed: %v", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if cfg.RemindersEnabled() {
		dialer := mail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password)
		notifier := reminder.NewNotifier(logger, eventService, dialer, cfg.SMTP.From, cfg.Reminder.Lead, location)
		scheduler, err := reminder.NewScheduler(logger, cfg.Reminder.Schedule, location, notifier)
		if err != nil {
			return err
		}
		g.Go(func() error {
			return scheduler.Run(ctx)
		})
	}

	return g.Wait()
}

func newLogger(cfg config.Config) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %v", cfg.LogLevel, err)
	}

	opts := &log.PrettyJSONHandlerOptions{
		HandlerOptions: slog.HandlerOptions{Level: level, AddSource: cfg.IsDevelopment()},
		PrettyPrint:    cfg.LogPretty,
	}
	return slog.New(log.New(log.NewPrettyJSONHandler(os.Stdout, opts))), nil
}

func newWeatherProvider(cfg config.Config, logger *slog.Logger, redisClient *redis.Client) weather.Provider {
	if cfg.Weather.Provider != config.WeatherAccuWeather {
		return weather.NewStaticProvider(cfg.Location())
	}

	provider := weather.NewAccuWeatherProvider(cfg.Weather.BaseURL, cfg.Weather.APIKey, cfg.Location())
	if redisClient == nil {
		return provider
	}
	return weather.NewCachedProvider(logger, redisClient, provider, cfg.Weather.CacheTTL)
}
