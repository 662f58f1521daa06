// Package localserver provides the Unix socket credential server.
package localserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"

	"github.com/averlon/sfsession-go/internal/core/domain"
	"github.com/averlon/sfsession-go/internal/telemetry/logger"
)

// CredentialSource supplies the credential served over the socket.
// *session.Coordinator satisfies this.
type CredentialSource interface {
	Credential() domain.Credential
}

// Server serves the current credential to local consumers over a Unix
// domain socket.
type Server struct {
	path   string
	source CredentialSource
	log    logger.Logger
	srv    *http.Server
}

// Option configures the server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(log logger.Logger) Option {
	return func(s *Server) {
		if log != nil {
			s.log = log
		}
	}
}

// New creates a local credential server listening on socketPath.
func New(socketPath string, source CredentialSource, opts ...Option) *Server {
	s := &Server{
		path:   socketPath,
		source: source,
		log:    logger.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("component", "localserver")
	return s
}

// ListenAndServe starts serving on the Unix socket. It blocks until
// Shutdown is called or the listener fails.
//
// A stale socket file from a previous run is removed before binding; the
// new socket is restricted to the daemon's user.
func (s *Server) ListenAndServe() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("localserver: remove stale socket %s: %w", s.path, err)
	}

	ln, err := net.Listen("unix", s.path)
	if err != nil {
		return fmt.Errorf("localserver: listen on %s: %w", s.path, err)
	}
	if err := os.Chmod(s.path, 0o600); err != nil {
		ln.Close()
		return fmt.Errorf("localserver: chmod socket %s: %w", s.path, err)
	}

	s.srv = &http.Server{Handler: s.routes()}
	s.log.Info("local credential server listening", "socket", s.path)

	if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server, draining in-flight requests until ctx
// expires, and removes the socket file.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	err := s.srv.Shutdown(ctx)
	if rmErr := os.Remove(s.path); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) && err == nil {
		err = rmErr
	}
	return err
}
