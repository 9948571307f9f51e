package panelapi

import (
	"context"
	"io"
	"strconv"

	errorsUtils "github.com/Egor213/NodeLogs/pkg/errors"
)

// OpenLogStream returns the raw event stream body of a node. The caller owns
// the body; cancelling ctx aborts it.
func (c *Client) OpenLogStream(ctx context.Context, nodeID int) (io.ReadCloser, error) {
	req, err := c.newRequest(ctx, "/api/node/"+strconv.Itoa(nodeID)+"/logs", "text/event-stream")
	if err != nil {
		return nil, err
	}
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}
	return resp.Body, nil
}
