// Package server exposes the scheduling algorithms over HTTP so that a
// browser front end can request results and render them itself.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"laptudirm.com/x/elevator/pkg/disk/sched"
)

// Server is the elevator JSON API.
type Server struct {
	router     chi.Router
	logger     *logrus.Entry
	algorithms []sched.Algorithm
	startTime  time.Time
}

// Option configures optional Server settings.
type Option func(*Server)

// WithAlgorithms sets the algorithms run when a request names none.
func WithAlgorithms(algos []sched.Algorithm) Option {
	return func(s *Server) {
		if len(algos) > 0 {
			s.algorithms = algos
		}
	}
}

// WithLogger sets the logger used for request logs.
func WithLogger(logger *logrus.Logger) Option {
	return func(s *Server) {
		s.logger = logger.WithField("component", "server")
	}
}

// New creates a new Server with all routes registered.
func New(opts ...Option) *Server {
	s := &Server{
		router:     chi.NewRouter(),
		logger:     logrus.WithField("component", "server"),
		algorithms: sched.Algorithms,
		startTime:  time.Now(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(middleware.Recoverer)
	s.router.Use(s.requestLogger)

	s.router.Get("/healthz", s.handleHealth)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/algorithms", s.handleAlgorithms)
		r.Post("/schedule", s.handleSchedule)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run serves the API on addr until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.WithField("addr", addr).Info("Listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.logger.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   ww.Status(),
			"duration": time.Since(start),
		}).Debug("Handled request")
	})
}
