package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/phrazzld/aircnc-api/internal/api"
	apiMiddleware "github.com/phrazzld/aircnc-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(app.corsOptions()))
	r.Use(apiMiddleware.TraceMiddleware(app.logger))

	userHandler := api.NewUserHandler(app.userStore, app.tokens, app.logger)
	homeHandler := api.NewHomeHandler(app.homeStore, app.logger)
	bookingHandler := api.NewBookingHandler(app.bookingStore, app.eventEmitter, app.logger)
	paymentHandler := api.NewPaymentHandler(app.intents, app.logger)
	healthHandler := api.NewHealthHandler(app.pinger, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.tokens)

	r.Get("/", healthHandler.Root)
	r.Get("/health", healthHandler.Health)

	// Users
	r.Put("/user/{email}", userHandler.SaveUser)
	r.Get("/user/{email}", userHandler.GetUser)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)
		r.Use(apiMiddleware.RequireAdmin(app.userStore))
		r.Get("/users", userHandler.ListUsers)
	})

	// Homes
	r.Route("/homes", func(r chi.Router) {
		r.Post("/", homeHandler.CreateHome)
		r.Get("/", homeHandler.ListHomes)
		r.Put("/", homeHandler.UpdateHome)
		r.Get("/{key}", homeHandler.GetHomes)
	})
	r.Delete("/home/{id}", homeHandler.DeleteHome)
	r.Get("/search-result", homeHandler.SearchHomes)

	// Bookings
	r.Route("/bookings", func(r chi.Router) {
		r.Post("/", bookingHandler.CreateBooking)
		r.Get("/", bookingHandler.ListBookings)
		r.Delete("/{id}", bookingHandler.DeleteBooking)
	})

	r.Post("/create-payment-intent", paymentHandler.CreatePaymentIntent)

	return r
}

func (app *application) corsOptions() cors.Options {
	origins := app.config.Server.CORSAllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders: []string{apiMiddleware.TraceIDHeader},
		MaxAge:         300,
	}
}
