package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withMetrics)

	// ClickNLoad pages post from arbitrary origins
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// probes
	router.Group(func(r chi.Router) {
		r.Get("/check", h.jdCheck)
		r.Get("/jdcheck.js", h.jdCheck)
		r.Get("/flash", h.flash)
		r.Get("/flash/", h.flash)
	})

	// submissions
	router.Group(func(r chi.Router) {
		r.Post("/add", h.add)
		r.Post("/flash/add", h.add)
		r.Post("/addcrypted2", h.addCrypted)
		r.Post("/flash/addcrypted2", h.addCrypted)
	})

	router.Get("/version", h.getVersion)
	router.Handle("/metrics", promhttp.Handler())

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
