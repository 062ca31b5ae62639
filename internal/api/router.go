package api

import (
	"net/http"
	"route-resolver-service/internal/api/handlers"
	"route-resolver-service/internal/ports"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Dependencies holds everything the HTTP layer needs. History is optional;
// the history route is only mounted when it is set.
type Dependencies struct {
	Resolver     handlers.RouteResolver
	History      ports.ResolutionLog
	HistoryLimit int

	// Browser origins allowed by CORS; empty allows any origin.
	AllowedOrigins []string
	Logger         *zap.Logger
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(deps Dependencies) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	historyLimit := deps.HistoryLimit
	if historyLimit <= 0 {
		historyLimit = 20
	}

	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         300,
	}))

	resolveHandler := &handlers.ResolveHandler{
		Resolver: deps.Resolver,
		Logger:   logger,
	}

	r.Get("/health", handlers.Health)
	r.Get("/routes/resolve", resolveHandler.Resolve)

	if deps.History != nil {
		historyHandler := &handlers.HistoryHandler{
			Log:          deps.History,
			DefaultLimit: historyLimit,
			Validate:     validator.New(),
			Logger:       logger,
		}
		r.Get("/routes/history", historyHandler.List)
	}

	return r
}
