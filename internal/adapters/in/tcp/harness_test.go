package tcp

import (
	"bufio"
	"context"
	"io"
	"net"
	"strings"
	"sync"
	"testing"
	"time"

	"cafe/internal/adapters/out/sqlstore/sqlstoretest"
	"cafe/internal/core/ports"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var baseTime = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

const ioTimeout = 5 * time.Second

// harness is one store shared by any number of piped sessions, with a
// clock the test can move.
type harness struct {
	t        *testing.T
	db       *gorm.DB
	useCases *UseCases

	mu  sync.Mutex
	now time.Time
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	h := &harness{t: t, now: baseTime}
	db, broker := sqlstoretest.Open(t)
	h.db = db
	h.useCases = NewUseCases(broker, broker, ports.ClockFunc(h.clock))
	return h
}

func (h *harness) clock() time.Time {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.now
}

func (h *harness) advance(d time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.now = h.now.Add(d)
}

// client is the far end of a piped session.
type client struct {
	t       *testing.T
	conn    net.Conn
	r       *bufio.Reader
	prompt  string
	session *Session
	done    chan struct{}
}

// connect starts a session for role and consumes its greeting.
func (h *harness) connect(role Role) (*client, string) {
	h.t.Helper()

	serverConn, clientConn := net.Pipe()
	session := NewSession(serverConn, role, h.useCases, sqlstoretest.DiscardLogger())

	c := &client{
		t:       h.t,
		conn:    clientConn,
		r:       bufio.NewReader(clientConn),
		prompt:  "cmd> ",
		session: session,
		done:    make(chan struct{}),
	}
	if role == RoleStaff {
		c.prompt = "bknd> "
	}

	go func() {
		defer close(c.done)
		session.Run(context.Background())
	}()
	h.t.Cleanup(func() {
		_ = clientConn.Close()
		<-c.done
	})

	return c, c.readUntilPrompt()
}

// readUntilPrompt returns everything up to the next prompt with CRLF
// turned into LF and surrounding blank lines trimmed.
func (c *client) readUntilPrompt() string {
	c.t.Helper()
	require.NoError(c.t, c.conn.SetReadDeadline(time.Now().Add(ioTimeout)))

	var sb strings.Builder
	for !strings.HasSuffix(sb.String(), c.prompt) {
		b, err := c.r.ReadByte()
		require.NoError(c.t, err, "output so far: %q", sb.String())
		sb.WriteByte(b)
	}

	out := strings.TrimSuffix(sb.String(), c.prompt)
	return strings.Trim(strings.ReplaceAll(out, "\r\n", "\n"), "\n")
}

// send writes one command line and returns the reply.
func (c *client) send(line string) string {
	c.t.Helper()
	c.write(line)
	return c.readUntilPrompt()
}

func (c *client) write(line string) {
	c.t.Helper()
	require.NoError(c.t, c.conn.SetWriteDeadline(time.Now().Add(ioTimeout)))
	_, err := c.conn.Write([]byte(line + "\r\n"))
	require.NoError(c.t, err)
}

// readToEOF returns the rest of the output once the session hangs up.
func (c *client) readToEOF() string {
	c.t.Helper()
	require.NoError(c.t, c.conn.SetReadDeadline(time.Now().Add(ioTimeout)))

	data, err := io.ReadAll(c.r)
	require.NoError(c.t, err)
	return strings.Trim(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
}

func (c *client) waitClosed() {
	c.t.Helper()
	select {
	case <-c.done:
	case <-time.After(ioTimeout):
		c.t.Fatal("session did not close")
	}
}
