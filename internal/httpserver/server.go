// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
)

// Server is an HTTP server implementation, which uses
// the HTTP handler provided.
type Server struct {
	name       string
	address    string
	addressSet chan struct{}
	handler    http.Handler
	logger     Logger
	optional   optionalSettings
}

// New creates a new HTTP server with a name, listening on
// the address specified and using the HTTP handler provided.
func New(name, address string, handler http.Handler,
	logger Logger, options ...Option) *Server {
	return &Server{
		name:       name,
		address:    address,
		addressSet: make(chan struct{}),
		handler:    handler,
		logger:     logger,
		optional:   newOptionalSettings(options),
	}
}

// Run runs the HTTP server until ctx is canceled.
// The ready channel is closed once the server listens,
// and the done channel receives the exit error of the server.
func (s *Server) Run(ctx context.Context, ready chan<- struct{}, done chan<- error) {
	settings := s.optional
	settings.setDefaults()

	server := http.Server{
		Addr:              s.address,
		Handler:           s.handler,
		ReadTimeout:       settings.readTimeout,
		ReadHeaderTimeout: settings.readHeaderTimeout,
	}

	crashed := make(chan struct{})
	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		select {
		case <-ctx.Done():
		case <-crashed:
			return
		}

		s.logger.Warn(s.name + " http server shutting down: " + ctx.Err().Error())
		shutdownCtx, cancel := context.WithTimeout(
			context.Background(), settings.shutdownTimeout)
		defer cancel()
		err := server.Shutdown(shutdownCtx)
		if err != nil {
			s.logger.Error(s.name + " http server failed shutting down within " +
				settings.shutdownTimeout.String() + ": " + err.Error())
		}
	}()

	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		close(s.addressSet)
		close(crashed)
		done <- err
		return
	}

	s.address = listener.Addr().String()
	close(s.addressSet)
	close(ready)

	s.logger.Info(s.name + " http server listening on " + s.address)
	err = server.Serve(listener)

	if err != nil && !errors.Is(ctx.Err(), context.Canceled) {
		// server crashed
		close(crashed)
		done <- err
		return
	}

	<-shutdownDone
	done <- nil
}

// GetAddress obtains the address the HTTP server is listening on.
// It blocks until the server started listening or failed to.
func (s *Server) GetAddress() (address string) {
	<-s.addressSet
	return s.address
}
