// Package server implements the loopback bridge itself: a hand-rolled
// HTTP/1.1 listener that routes interpreter requests through a runner and
// answers everything else with a fixed page or an error status.
package server

import (
	"fmt"
	"net"
	"sync"

	"github.com/rs/zerolog"

	"github.com/flurion/fpb/logging"
	"github.com/flurion/fpb/runner"
)

// DefaultAddr is the fixed loopback endpoint the mod connects to.
const DefaultAddr = "127.0.0.1:6914"

// Server accepts connections and hands each one to a bounded pool of
// workers. With a single worker, connections are processed strictly one at a
// time, matching the original helper.
type Server struct {
	Addr    string
	Workers int
	Runner  *runner.Runner

	log zerolog.Logger
}

// New creates a Server. An empty addr means DefaultAddr; workers below one
// are raised to one.
func New(addr string, workers int, run *runner.Runner) *Server {
	if addr == "" {
		addr = DefaultAddr
	}
	if workers < 1 {
		workers = 1
	}
	return &Server{
		Addr:    addr,
		Workers: workers,
		Runner:  run,
		log:     logging.Component("server"),
	}
}

// ListenAndServe binds the configured address and serves until the listener
// fails. A bind failure is returned immediately.
func (s *Server) ListenAndServe() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return fmt.Errorf("bind %s: %w", s.Addr, err)
	}
	defer ln.Close()

	s.log.Info().Str("addr", ln.Addr().String()).Msg("listening")
	return s.Serve(ln)
}

// Serve runs the accept loop on ln. Accepted connections are queued to the
// worker pool. An accept failure is unrecoverable: it drains the pool and is
// returned. Failures inside a single connection never reach here.
func (s *Server) Serve(ln net.Listener) error {
	conns := make(chan net.Conn)

	var wg sync.WaitGroup
	for i := 0; i < s.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for conn := range conns {
				s.handle(conn)
			}
		}()
	}

	var acceptErr error
	for {
		conn, err := ln.Accept()
		if err != nil {
			acceptErr = err
			break
		}
		conns <- conn
	}

	close(conns)
	wg.Wait()
	return acceptErr
}
