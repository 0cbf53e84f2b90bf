// Package tcp serves the cafe's two line protocols: the customer protocol
// (prompt "cmd> ") and the staff protocol (prompt "bknd> "). Each listener
// accepts connections for one role and runs one Session per connection in
// its own goroutine. All sessions of both listeners share one UseCases and
// so one store.
package tcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"
)

// acceptRetryDelay is the pause after a failed Accept.
const acceptRetryDelay = 50 * time.Millisecond

// Listener accepts connections for one role.
type Listener struct {
	role     Role
	addr     string
	useCases *UseCases
	logger   *slog.Logger

	mu       sync.Mutex
	listener net.Listener
	conns    map[net.Conn]struct{}
	wg       sync.WaitGroup
}

// NewListener prepares a listener for role on addr. Nothing is bound until Start.
func NewListener(role Role, addr string, useCases *UseCases, logger *slog.Logger) *Listener {
	return &Listener{
		role:     role,
		addr:     addr,
		useCases: useCases,
		logger:   logger.With("component", string(role)+"-listener"),
		conns:    make(map[net.Conn]struct{}),
	}
}

// Start binds the address and serves connections in the background until
// Stop is called. A bind failure is returned to the caller.
func (l *Listener) Start(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.listener != nil {
		return fmt.Errorf("%s listener already started", l.role)
	}

	listener, err := net.Listen("tcp", l.addr)
	if err != nil {
		return fmt.Errorf("listen %s on %s: %w", l.role, l.addr, err)
	}
	l.listener = listener

	l.logger.InfoContext(ctx, "Listening", "addr", listener.Addr().String())

	l.wg.Add(1)
	go l.acceptLoop(ctx, listener)
	return nil
}

// Addr returns the bound address, or "" before Start.
func (l *Listener) Addr() string {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.listener == nil {
		return ""
	}
	return l.listener.Addr().String()
}

// Stop closes the listener and every open connection, then waits for the
// sessions to finish or ctx to expire.
func (l *Listener) Stop(ctx context.Context) error {
	l.mu.Lock()
	if l.listener == nil {
		l.mu.Unlock()
		return nil
	}
	err := l.listener.Close()
	l.listener = nil
	for conn := range l.conns {
		_ = conn.Close()
	}
	l.mu.Unlock()

	done := make(chan struct{})
	go func() {
		l.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		l.logger.InfoContext(ctx, "Stopped")
	case <-ctx.Done():
		return ctx.Err()
	}

	if errors.Is(err, net.ErrClosed) {
		return nil
	}
	return err
}

func (l *Listener) acceptLoop(ctx context.Context, listener net.Listener) {
	defer l.wg.Done()

	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return
			}
			l.logger.ErrorContext(ctx, "Accept failed", "error", err)
			time.Sleep(acceptRetryDelay)
			continue
		}

		if !l.track(conn) {
			_ = conn.Close()
			return
		}

		l.wg.Add(1)
		go func() {
			defer l.wg.Done()
			defer l.untrack(conn)

			NewSession(conn, l.role, l.useCases, l.logger).Run(ctx)
		}()
	}
}

// track registers conn, or reports false once Stop has begun.
func (l *Listener) track(conn net.Conn) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.listener == nil {
		return false
	}
	l.conns[conn] = struct{}{}
	return true
}

func (l *Listener) untrack(conn net.Conn) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.conns, conn)
}
