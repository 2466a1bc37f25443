// Package httpapi exposes the credential service over HTTP/JSON. It decodes
// transport payloads into service calls and maps service errors to stable
// status codes; all business rules live in the services package.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/mkarpov/userkeeper/internal/logging"
	"github.com/mkarpov/userkeeper/internal/server/services"
)

type Server struct {
	address     string
	logger      logging.Logger
	credentials *services.CredentialService
}

func NewServer(address string, l logging.Logger, credentials *services.CredentialService) *Server {
	return &Server{
		address:     address,
		logger:      l.With("module", "http_server"),
		credentials: credentials,
	}
}

// Handler builds the route table. Exposed separately from Run so tests can
// drive the full stack through httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/", s.handleRoot)
	mux.HandleFunc("/signup", s.handleSignup)
	mux.HandleFunc("/signin", s.handleSignin)
	mux.HandleFunc("/forget-password", s.handleForgetPassword)
	mux.HandleFunc("/reset-password", s.handleResetPassword)

	return s.withLogging(mux)
}

func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info(r.Context(), "request",
			"method", r.Method, "path", r.URL.Path, "duration", time.Since(start).String())
	})
}
