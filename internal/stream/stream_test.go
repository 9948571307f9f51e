package stream_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/Egor213/NodeLogs/internal/domain"
	"github.com/Egor213/NodeLogs/internal/stream"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHandler struct {
	mu       sync.Mutex
	opened   int
	entries  []domain.LogEntry
	closed   bool
	closeErr error
}

func (h *recordingHandler) OnOpen() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.opened++
}

func (h *recordingHandler) OnEntry(e domain.LogEntry) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries, e)
}

func (h *recordingHandler) OnClose(err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	h.closeErr = err
}

func (h *recordingHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// sseServer streams the given payloads and then either ends the response or
// holds it open until the client goes away.
func sseServer(t *testing.T, payloads []string, hold bool) *httptest.Server {
	t.Helper()

	e := echo.New()
	e.GET("/api/node/:id/logs", func(c echo.Context) error {
		res := c.Response()
		res.Header().Set(echo.HeaderContentType, "text/event-stream")
		res.WriteHeader(http.StatusOK)
		_, _ = res.Write([]byte(":keepalive\n\n"))
		for _, p := range payloads {
			_, _ = fmt.Fprintf(res, "data: %s\n\n", p)
		}
		res.Flush()
		if hold {
			<-c.Request().Context().Done()
		}
		return nil
	})

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv
}

func httpConnector(base string) stream.Connector {
	return stream.ConnectorFunc(func(ctx context.Context, nodeID int) (io.ReadCloser, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/api/node/%d/logs", base, nodeID), nil)
		if err != nil {
			return nil, err
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, err
		}
		return resp.Body, nil
	})
}

func TestStream_DeliversEntriesInOrder(t *testing.T) {
	srv := sseServer(t, []string{
		`{"timestamp":1700000000000,"message":"[info] one"}`,
		`two`,
		`{"message":"[error] three"}`,
	}, false)

	h := &recordingHandler{}
	s := stream.Connect(context.Background(), httpConnector(srv.URL), 3, h)

	select {
	case <-s.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("stream did not finish")
	}

	assert.Equal(t, stream.Closed, s.State())
	assert.Equal(t, 3, s.NodeID())

	h.mu.Lock()
	defer h.mu.Unlock()
	assert.Equal(t, 1, h.opened)
	assert.True(t, h.closed)
	assert.NoError(t, h.closeErr)
	require.Len(t, h.entries, 3)
	assert.Equal(t, "[info] one", h.entries[0].Message)
	assert.Equal(t, "two", h.entries[1].Message)
	assert.Equal(t, domain.LevelError, h.entries[2].Level)
	for i, e := range h.entries {
		assert.Equal(t, uint64(i+1), e.Seq)
	}
}

func TestStream_CloseStopsOpenConnection(t *testing.T) {
	srv := sseServer(t, []string{"a", "b"}, true)

	h := &recordingHandler{}
	s := stream.Connect(context.Background(), httpConnector(srv.URL), 1, h)

	require.Eventually(t, func() bool { return h.count() == 2 }, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, stream.Open, s.State())

	s.Close()

	assert.Equal(t, stream.Closed, s.State())
	h.mu.Lock()
	defer h.mu.Unlock()
	assert.False(t, h.closed)
}

func TestStream_ConnectError(t *testing.T) {
	connErr := errors.New("dial failed")
	conn := stream.ConnectorFunc(func(ctx context.Context, nodeID int) (io.ReadCloser, error) {
		return nil, connErr
	})

	h := &recordingHandler{}
	s := stream.Connect(context.Background(), conn, 9, h)
	<-s.Done()

	assert.Equal(t, stream.Error, s.State())
	assert.False(t, s.State().Loading())
	h.mu.Lock()
	defer h.mu.Unlock()
	assert.Equal(t, 0, h.opened)
	assert.ErrorIs(t, h.closeErr, connErr)
}

func TestStream_UsesClockForPlainPayloads(t *testing.T) {
	fixed := time.Date(2024, 5, 5, 5, 5, 5, 0, time.UTC)
	pr, pw := io.Pipe()
	conn := stream.ConnectorFunc(func(ctx context.Context, nodeID int) (io.ReadCloser, error) {
		return pr, nil
	})

	h := &recordingHandler{}
	s := stream.Connect(context.Background(), conn, 2, h, stream.WithClock(func() time.Time { return fixed }))

	_, err := io.WriteString(pw, "data: plain\n\n")
	require.NoError(t, err)
	require.Eventually(t, func() bool { return h.count() == 1 }, 5*time.Second, 10*time.Millisecond)

	s.Close()

	h.mu.Lock()
	defer h.mu.Unlock()
	assert.Equal(t, fixed.Format(stream.TimestampLayout), h.entries[0].Timestamp)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", stream.Idle.String())
	assert.Equal(t, "connecting", stream.Connecting.String())
	assert.True(t, stream.Connecting.Loading())
	assert.Equal(t, "open", stream.Open.String())
	assert.Equal(t, "closed", stream.Closed.String())
	assert.Equal(t, "error", stream.Error.String())
}
