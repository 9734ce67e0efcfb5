package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/vytor/gadgetquiz/internal/services"
)

type Server struct {
	GameService        services.GameService
	QuizService        services.QuizService
	CORSAllowedOrigins string
}

// Routes builds the router. The whole API is one RPC endpoint: every
// procedure is dispatched by name under /rpc/{procedure}.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: strings.Split(s.CORSAllowedOrigins, ","),
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))
	r.Use(securityHeadersMiddleware)

	r.Post("/rpc/{procedure}", s.handleRPC)
	// Healthcheck is also reachable with a plain GET for probes.
	r.Get("/rpc/healthcheck", s.handleHealthcheck)

	return r
}
