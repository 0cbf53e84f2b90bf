package tcp

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"strconv"
	"strings"
	"sync/atomic"
	"unicode"

	"github.com/google/uuid"
)

// Role selects the command set of a session. It is fixed by the listener
// that accepted the connection.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleStaff    Role = "staff"
)

// State is the lifecycle state of a Session.
type State int32

const (
	StateActive State = iota
	StateClosed
)

func (s State) String() string {
	if s == StateClosed {
		return "CLOSED"
	}
	return "ACTIVE"
}

// reply is the outcome of one command: lines to send, and whether the
// session ends afterwards.
type reply struct {
	lines []string
	close bool
}

func say(lines ...string) reply {
	return reply{lines: lines}
}

// dialect is the role-specific part of a session.
type dialect interface {
	greeting() []string
	prompt() string
	execute(ctx context.Context, line string) (reply, error)
}

// userError is a command failure the user can act on. Its message is sent
// as is; any other error is logged and answered with MsgInternalError.
type userError struct {
	msg string
}

func (e *userError) Error() string {
	return e.msg
}

func newUserError(msg string) error {
	return &userError{msg: msg}
}

// Session serves one connection. It reads a command line, executes it, and
// writes the reply until the user exits, the input ends or the connection
// fails. Command errors never end a session.
type Session struct {
	id      uuid.UUID
	role    Role
	conn    net.Conn
	io      *lineIO
	dialect dialect
	state   atomic.Int32
	logger  *slog.Logger
}

// NewSession binds conn to role. Customer sessions own a fresh, empty cart.
func NewSession(conn net.Conn, role Role, useCases *UseCases, logger *slog.Logger) *Session {
	id := uuid.New()

	var d dialect
	if role == RoleStaff {
		d = newStaffDialect(useCases)
	} else {
		d = newCustomerDialect(useCases)
	}

	return &Session{
		id:      id,
		role:    role,
		conn:    conn,
		io:      newLineIO(conn),
		dialect: d,
		logger: logger.With(
			"session_id", id.String(),
			"role", string(role),
			"remote", conn.RemoteAddr().String(),
		),
	}
}

// ID returns the session id used in logs.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// State reports whether the session is still serving.
func (s *Session) State() State {
	return State(s.state.Load())
}

// Run serves the connection until the session closes, then closes the
// connection. Store operations already started finish even if ctx is
// canceled meanwhile.
func (s *Session) Run(ctx context.Context) {
	reason := "exit"
	defer func() {
		s.state.Store(int32(StateClosed))
		_ = s.conn.Close()
		s.logger.InfoContext(ctx, "Session closed", "reason", reason)
	}()

	s.logger.InfoContext(ctx, "Session started")
	storeCtx := context.WithoutCancel(ctx)

	if err := s.io.writeLines(s.dialect.greeting()...); err != nil {
		reason = "connection error"
		return
	}

	for {
		if err := s.io.prompt(s.dialect.prompt()); err != nil {
			reason = "connection error"
			return
		}

		line, err := s.io.readLine()
		if errors.Is(err, errLineTooLong) {
			if err = s.io.writeLines(MsgLineTooLong); err != nil {
				reason = "connection error"
				return
			}
			continue
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				reason = "end of input"
				_ = s.io.writeLines("", "Goodbye!")
			} else {
				reason = "connection error"
				s.logger.DebugContext(ctx, "Read failed", "error", err)
			}
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		r, err := s.dialect.execute(storeCtx, line)
		if err != nil {
			r = say(s.describeError(ctx, line, err))
		}

		if err = s.io.writeLines(r.lines...); err != nil {
			reason = "connection error"
			return
		}
		if r.close {
			return
		}
	}
}

func (s *Session) describeError(ctx context.Context, line string, err error) string {
	var userErr *userError
	if errors.As(err, &userErr) {
		return userErr.msg
	}

	s.logger.ErrorContext(ctx, "Command failed", "command", line, "error", err)
	return MsgInternalError
}

// splitCommand separates the lower-cased command word from the rest of the line.
func splitCommand(line string) (string, string) {
	line = strings.TrimSpace(line)
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return strings.ToLower(line), ""
	}
	return strings.ToLower(line[:i]), strings.TrimSpace(line[i:])
}

// parsePositiveID parses an id argument; what names it in the error message.
func parsePositiveID(arg, what string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, newUserError(what + " must be a positive integer.")
	}
	return id, nil
}

// helpCommand and exitCommand are shared by both roles.
type helpCommand struct{}

type exitCommand struct{}

const goodbye = "See you next time."
