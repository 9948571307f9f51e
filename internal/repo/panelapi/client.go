package panelapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Egor213/NodeLogs/internal/repo/repoerrs"
	errorsUtils "github.com/Egor213/NodeLogs/pkg/errors"
)

const (
	defaultTimeout = 10 * time.Second
	maxErrorBody   = 512
)

type Option func(*Client)

// Timeout bounds plain requests. Log streams are never bounded by it.
func Timeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

func HTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.http = client
	}
}

// Client talks to the management panel API.
type Client struct {
	baseURL string
	token   string
	timeout time.Duration
	http    *http.Client
}

func New(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		timeout: defaultTimeout,
		http:    &http.Client{},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) newRequest(ctx context.Context, path, accept string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	req.Header.Set("Accept", accept)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}

// checkStatus maps a non-2xx response to an error and closes its body.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return repoerrs.ErrUnauthorized
	case http.StatusNotFound:
		return repoerrs.ErrNotFound
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return fmt.Errorf("panel api: %w", &errorsUtils.StatusError{
		Code: resp.StatusCode,
		Body: strings.TrimSpace(string(body)),
	})
}
