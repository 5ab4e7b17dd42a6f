package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"github.com/MuhammedQureshi/BarberPages/internal/booking"
	"github.com/MuhammedQureshi/BarberPages/internal/middleware"
	"github.com/MuhammedQureshi/BarberPages/internal/web"
	"github.com/MuhammedQureshi/BarberPages/pkg/config"
	"github.com/MuhammedQureshi/BarberPages/pkg/httpserver"
	"github.com/MuhammedQureshi/BarberPages/pkg/logger"
	"github.com/MuhammedQureshi/BarberPages/pkg/mongo"
	"github.com/MuhammedQureshi/BarberPages/pkg/redis"
)

type appConfig struct {
	Env            string        `env:"APP_ENV" envDefault:"development"`
	PublicURL      string        `env:"PUBLIC_URL" envDefault:"http://localhost:8080"`
	Database       string        `env:"MONGODB_DATABASE" envDefault:"barberpages"`
	AllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*"`
	CreateRateRPS  float64       `env:"CREATE_RATE_RPS" envDefault:"1"`
	CreateBurst    int           `env:"CREATE_RATE_BURST" envDefault:"5"`
	PageCacheTTL   time.Duration `env:"PAGE_CACHE_TTL" envDefault:"10m"`
}

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("server exited with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var (
		appCfg   appConfig
		mongoCfg mongo.Config
		redisCfg redis.Config
		httpCfg  httpserver.Config
	)
	if err := errors.Join(
		config.Load(&appCfg),
		config.Load(&mongoCfg),
		config.Load(&redisCfg),
		config.Load(&httpCfg),
	); err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logOpt := logger.WithDevelopment("barberpages")
	if appCfg.Env == "production" {
		logOpt = logger.WithProduction("barberpages")
	}
	log := logger.New(logOpt)
	logger.SetAsDefault(log)

	db, err := mongo.NewWithDatabase(ctx, mongoCfg, appCfg.Database)
	if err != nil {
		return fmt.Errorf("connect to mongodb: %w", err)
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Client().Disconnect(disconnectCtx); err != nil {
			log.Error("failed to disconnect from mongodb", logger.Error(err))
		}
	}()

	var repo booking.Repository
	mongoRepo, err := booking.NewMongoRepository(ctx, db)
	if err != nil {
		return fmt.Errorf("init booking repository: %w", err)
	}
	repo = mongoRepo

	healthProbes := []func(context.Context) error{mongo.Healthcheck(db.Client())}

	if redisCfg.Enabled() {
		rdb, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Error("failed to close redis client", logger.Error(err))
			}
		}()
		repo = booking.NewPageCache(repo, rdb, appCfg.PageCacheTTL)
		healthProbes = append(healthProbes, redis.Healthcheck(rdb))
		log.Info("page cache enabled", slog.Duration("ttl", appCfg.PageCacheTTL))
	}

	writer := booking.NewWriter(repo, log)
	handler := web.NewHandler(writer, repo, log, appCfg.PublicURL)

	createLimiter := middleware.NewRateLimiter(rate.Limit(appCfg.CreateRateRPS), appCfg.CreateBurst)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.SecurityHeaders)
	r.Get("/healthz", httpserver.HealthCheckHandler(ctx, log, healthProbes...))
	r.Mount("/", handler.Router(createLimiter.Middleware))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: appCfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(r)

	srv := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log))
	return srv.Run(ctx, corsHandler)
}
