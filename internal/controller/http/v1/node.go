package httpv1

import (
	"net/http"

	"github.com/Egor213/NodeLogs/internal/service"
	"github.com/labstack/echo/v4"
)

type nodeRoutes struct {
	nodes service.Nodes
}

func newNodeRoutes(g *echo.Group, nodes service.Nodes) {
	r := &nodeRoutes{nodes: nodes}

	g.GET("/nodes", r.list)
}

func (r *nodeRoutes) list(c echo.Context) error {
	nodes, err := r.nodes.List(c.Request().Context())
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, nodes)
}
