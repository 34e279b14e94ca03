package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/rs/zerolog"

	"tickets-api/internal/config"
	"tickets-api/internal/handlers"
	"tickets-api/internal/middleware"
	"tickets-api/internal/repository"
	"tickets-api/internal/service"
)

func New(log zerolog.Logger, store repository.TicketStore, cfg config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recoverer(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))
	if cfg.RateLimit > 0 {
		r.Use(httprate.LimitByIP(cfg.RateLimit, time.Minute))
	}

	r.Get("/health", handlers.Health())
	r.Get("/info", handlers.Info(cfg))

	svc := service.NewTicketService(log)
	th := handlers.NewTicketHTTP(svc, log)
	rh := handlers.NewReportsHTTP(svc, log)

	r.Group(func(r chi.Router) {
		r.Use(middleware.DBSession(store, log))

		r.Route("/tickets", func(r chi.Router) {
			r.Get("/", th.List())
			r.Post("/", th.Create())
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", th.Get())
				r.Put("/", th.Update())
				r.Delete("/", th.Delete())
			})
		})
		r.Get("/reports/summary", rh.Summary())
	})

	return r
}
