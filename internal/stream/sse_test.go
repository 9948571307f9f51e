package stream_test

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/Egor213/NodeLogs/internal/stream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, body string) []stream.Event {
	t.Helper()

	dec := stream.NewDecoder(strings.NewReader(body))
	var events []stream.Event
	for {
		ev, err := dec.Next()
		if err == io.EOF {
			return events
		}
		require.NoError(t, err)
		events = append(events, ev)
	}
}

func TestDecoder_Next(t *testing.T) {
	testCases := []struct {
		name string
		body string
		want []stream.Event
	}{
		{
			name: "single data line",
			body: "data: hello\n\n",
			want: []stream.Event{{Data: "hello"}},
		},
		{
			name: "multi line data is joined",
			body: "data: first\ndata: second\n\n",
			want: []stream.Event{{Data: "first\nsecond"}},
		},
		{
			name: "comments and keepalives are skipped",
			body: ":keepalive\n\ndata: x\n\n:keepalive\n\n",
			want: []stream.Event{{Data: "x"}},
		},
		{
			name: "fields are carried",
			body: "event: log\nid: 7\nretry: 1500\ndata: {\"message\":\"m\"}\n\n",
			want: []stream.Event{{ID: "7", Type: "log", Retry: 1500 * time.Millisecond, Data: `{"message":"m"}`}},
		},
		{
			name: "no space after colon",
			body: "data:tight\n\n",
			want: []stream.Event{{Data: "tight"}},
		},
		{
			name: "crlf line endings",
			body: "data: a\r\n\r\ndata: b\r\n\r\n",
			want: []stream.Event{{Data: "a"}, {Data: "b"}},
		},
		{
			name: "unterminated trailing event is dropped",
			body: "data: done\n\ndata: partial",
			want: []stream.Event{{Data: "done"}},
		},
		{
			name: "empty data field still dispatches",
			body: "data\n\n",
			want: []stream.Event{{Data: ""}},
		},
		{
			name: "empty body",
			body: "",
			want: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, collect(t, tc.body))
		})
	}
}
