package panelapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/Egor213/NodeLogs/internal/domain"
	errorsUtils "github.com/Egor213/NodeLogs/pkg/errors"
	"github.com/valyala/fastjson"
)

var ErrBadNodeList = errors.New("malformed node list")

func (c *Client) ListNodes(ctx context.Context) ([]domain.Node, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := c.newRequest(ctx, "/api/nodes", "application/json")
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return parseNodes(body)
}

// parseNodes accepts a bare array or an object wrapping it under "nodes".
func parseNodes(body []byte) ([]domain.Node, error) {
	v, err := fastjson.ParseBytes(body)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(fmt.Errorf("%w: %v", ErrBadNodeList, err))
	}

	if v.Type() == fastjson.TypeObject {
		v = v.Get("nodes")
	}
	if v == nil {
		return nil, errorsUtils.WrapPathErr(ErrBadNodeList)
	}
	items, err := v.Array()
	if err != nil {
		return nil, errorsUtils.WrapPathErr(fmt.Errorf("%w: %v", ErrBadNodeList, err))
	}

	nodes := make([]domain.Node, 0, len(items))
	for _, item := range items {
		id := item.GetInt("id")
		if id <= 0 {
			continue
		}
		name := string(item.GetStringBytes("name"))
		if name == "" {
			name = "node-" + strconv.Itoa(id)
		}
		nodes = append(nodes, domain.Node{ID: id, Name: name})
	}
	return nodes, nil
}
