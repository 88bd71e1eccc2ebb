package server

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"DoctorsPortal/config"
	"DoctorsPortal/config/db"
	"DoctorsPortal/config/logger"
	"DoctorsPortal/config/redis"
	"DoctorsPortal/payment"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Config *config.Config

	MigrationEnabled bool
	MigrationHandler func(ctx context.Context, app *App) error

	// JobsHandler starts background jobs and returns a function stopping them.
	JobsEnabled bool
	JobsHandler func(app *App) (func(), error)

	WebServerPreHandler func(r *gin.Engine, app *App)
}

/*
* Connect the store and the cache once for the whole process
* Run migrations and start jobs
* Serve until SIGINT or SIGTERM then release everything
 */
func Start(opts Options) {
	cfg := opts.Config
	logger.Setup(cfg.LogLevel, cfg.IsDev())
	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase, cfg.MongoTransactions)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			log.Error().Err(err).Msg("Failed to disconnect from MongoDB")
		}
	}()

	cache, err := redis.Connect(ctx, cfg.RedisURL)
	if err != nil {
		log.Error().Err(err).Msg("Redis unavailable, catalog cache disabled")
		cache = redis.NoopCache{}
	}
	defer cache.Close()

	app := NewApp(cfg, store, cache, payment.NewStripe(cfg.StripeSecretKey, cfg.StripeCurrency))

	if opts.MigrationEnabled && opts.MigrationHandler != nil {
		if err := opts.MigrationHandler(ctx, app); err != nil {
			log.Fatal().Err(err).Msg("Migration failed")
		}
	}

	if opts.JobsEnabled && opts.JobsHandler != nil {
		stopJobs, err := opts.JobsHandler(app)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to start jobs")
		}
		defer stopJobs()
	}

	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), Logger(log.Logger))
	if opts.WebServerPreHandler != nil {
		opts.WebServerPreHandler(r, app)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Server Running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
}
