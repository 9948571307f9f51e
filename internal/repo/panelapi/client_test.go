package panelapi_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Egor213/NodeLogs/internal/domain"
	"github.com/Egor213/NodeLogs/internal/repo/panelapi"
	"github.com/Egor213/NodeLogs/internal/repo/repoerrs"
	errorsUtils "github.com/Egor213/NodeLogs/pkg/errors"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const token = "secret"

func newPanel(t *testing.T) *httptest.Server {
	t.Helper()

	e := echo.New()
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Header.Get("Authorization") != "Bearer "+token {
				return c.NoContent(http.StatusUnauthorized)
			}
			return next(c)
		}
	})
	e.GET("/api/nodes", func(c echo.Context) error {
		return c.JSONBlob(http.StatusOK, []byte(`[{"id":1,"name":"edge-1"},{"id":2},{"name":"broken"}]`))
	})
	e.GET("/api/node/:id/logs", func(c echo.Context) error {
		switch c.Param("id") {
		case "1":
		case "9":
			return c.String(http.StatusInternalServerError, "panel exploded")
		default:
			return c.NoContent(http.StatusNotFound)
		}
		if c.Request().Header.Get("Accept") != "text/event-stream" {
			return c.NoContent(http.StatusNotAcceptable)
		}
		c.Response().Header().Set(echo.HeaderContentType, "text/event-stream")
		return c.String(http.StatusOK, "data: hello\n\n")
	})

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_ListNodes(t *testing.T) {
	srv := newPanel(t)

	testCases := []struct {
		name    string
		token   string
		want    []domain.Node
		wantErr error
	}{
		{
			name:  "success",
			token: token,
			want: []domain.Node{
				{ID: 1, Name: "edge-1"},
				{ID: 2, Name: "node-2"},
			},
		},
		{
			name:    "bad token",
			token:   "nope",
			wantErr: repoerrs.ErrUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := panelapi.New(srv.URL+"/", tc.token)

			got, err := c.ListNodes(context.Background())
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestClient_OpenLogStream(t *testing.T) {
	srv := newPanel(t)
	c := panelapi.New(srv.URL, token)

	body, err := c.OpenLogStream(context.Background(), 1)
	require.NoError(t, err)
	defer body.Close()

	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "data: hello\n\n", string(data))

	_, err = c.OpenLogStream(context.Background(), 3)
	assert.ErrorIs(t, err, repoerrs.ErrNotFound)

	_, err = c.OpenLogStream(context.Background(), 9)
	code, ok := errorsUtils.StatusCode(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Contains(t, err.Error(), "panel exploded")
}
