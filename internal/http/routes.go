package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

// NewRouter arma el router del API público. Todo es GET: las
// mutaciones entran por el cliente de backoffice, nunca por acá.
func NewRouter(a *API, corsOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(func(next http.Handler) http.Handler { return WithRequestID(next) })
	r.Use(func(next http.Handler) http.Handler { return WithAccessLog(next) })
	r.Use(func(next http.Handler) http.Handler { return WithMetrics(next) })
	if len(corsOrigins) > 0 {
		r.Use(func(next http.Handler) http.Handler { return WithCORS(next, corsOrigins) })
	}

	r.Route("/v1", func(r chi.Router) {
		r.Get("/services", a.handleServices())
		r.Get("/shows", a.handleShows())
		r.Get("/discography", a.handleDiscography())
		r.Get("/members", a.handleMembers())
		r.Get("/testimonials", a.handleTestimonials())
		r.Get("/events", a.handleEvents())
		r.Get("/media", a.handleMedia)
		r.Get("/snapshot", a.handleSnapshot)
	})

	r.Get("/healthz", a.handleHealthz)
	r.Get("/readyz", a.handleReadyz)
	r.Handle("/metrics", RegisterMetrics(prometheus.DefaultRegisterer))

	return r
}
