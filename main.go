package main

import (
	"context"

	"DoctorsPortal/config"
	"DoctorsPortal/jobs"
	"DoctorsPortal/migrations"
	"DoctorsPortal/routes"
	"DoctorsPortal/server"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

var (
	startServer = server.Start
	isTest      = false
)

func main() {
	run()
}

func run() {
	err := godotenv.Load()
	if err != nil {
		log.Warn().Msg("Error in loading the ENV")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	options := server.Options{
		Config: cfg,

		MigrationEnabled: cfg.MigrationsEnabled && !isTest,
		MigrationHandler: func(ctx context.Context, app *server.App) error {
			if err := migrations.Run(ctx, app.Store); err != nil {
				return err
			}
			// seeded catalog must not be shadowed by a stale cached copy
			return app.Handlers.Appointments.InvalidateCatalog(ctx)
		},

		JobsEnabled: cfg.JobsEnabled && !isTest,
		JobsHandler: func(app *server.App) (func(), error) {
			c, err := jobs.StartPaymentReconciler(cfg.ReconcileCron, app.Handlers.Payments)
			if err != nil {
				return nil, err
			}
			return func() { <-c.Stop().Done() }, nil
		},

		WebServerPreHandler: func(r *gin.Engine, app *server.App) {
			r.Use(cors.New(cors.Config{
				AllowOrigins:     cfg.CORSOrigins,
				AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
				AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
				AllowCredentials: true,
			}))
			routes.Routes(r, app.Handlers)
		},
	}
	startServer(options)
}
