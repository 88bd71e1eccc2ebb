package server

import (
	"DoctorsPortal/config"
	"DoctorsPortal/config/authorization"
	"DoctorsPortal/config/db"
	"DoctorsPortal/config/jwt"
	"DoctorsPortal/config/redis"
	"DoctorsPortal/controllers"
	"DoctorsPortal/payment"
	"DoctorsPortal/repository"
	"DoctorsPortal/services"
)

// App holds the long-lived resources and the services built on them.
type App struct {
	Config    *config.Config
	Store     *db.Store
	Cache     redis.Cache
	Tokens    *jwt.Manager
	Processor payment.Processor
	Handlers  *controllers.Handlers
}

/*
* Build a repository per collection over the shared store
* Build the services over the repositories
* Bind them to handlers with the auth middlewares
 */
func NewApp(cfg *config.Config, store *db.Store, cache redis.Cache, processor payment.Processor) *App {
	tokens := jwt.NewManager(cfg.JWTSecret, cfg.JWTExpiry)

	options := repository.NewAppointmentOptionRepository(store)
	bookings := repository.NewBookingRepository(store)
	users := repository.NewUserRepository(store)
	doctors := repository.NewDoctorRepository(store)
	payments := repository.NewPaymentRepository(store)

	handlers := &controllers.Handlers{
		Appointments: services.NewAppointmentService(options, bookings, cache, cfg.CatalogCacheTTL),
		Bookings:     services.NewBookingService(bookings),
		Users:        services.NewUserService(users, tokens),
		Doctors:      services.NewDoctorService(doctors),
		Payments:     services.NewPaymentService(payments, bookings, store, processor),
		Auth:         authorization.JWTAuth(tokens),
		Admin:        authorization.RequireAdmin(users),
	}

	return &App{
		Config:    cfg,
		Store:     store,
		Cache:     cache,
		Tokens:    tokens,
		Processor: processor,
		Handlers:  handlers,
	}
}
