// Package server is the HTTP shell around the planner core: a thin JSON API
// any front-end can drive. It owns no planner semantics of its own.
package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	chayilmiddleware "github.com/chayilhub/chayil/internal/server/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// Config holds the HTTP shell settings and its collaborators.
type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

// WebAPI wraps the router and server lifecycle.
type WebAPI struct {
	router *chi.Mux
	logger *zerolog.Logger
	server *http.Server
}

// NewWebAPI builds the router and wires the planner handlers.
func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	h := NewHandler(config.Dependencies)

	router := chi.NewRouter()
	router.Use(chayilmiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", h.Login)
		r.Post("/auth/signup", h.SignUp)
		r.Delete("/auth/session", h.Logout)

		r.Get("/state", h.GetState)
		r.Patch("/state", h.PatchState)
		r.Get("/summary", h.GetSummary)
		r.Post("/wheel/save", h.SaveWheelCalibration)

		r.Post("/coach/advice", h.CoachAdvice)
		r.Post("/coach/ideas", h.CoachIdeas)
	})

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
	}
}

// Router exposes the mux, mainly for tests.
func (w *WebAPI) Router() http.Handler {
	return w.router
}

// Start serves until an error or a termination signal, then shuts down
// gracefully.
func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
