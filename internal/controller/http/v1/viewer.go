package httpv1

import (
	"net/http"
	"strings"

	logginghelper "github.com/Egor213/NodeLogs/internal/controller/common/logging"
	"github.com/Egor213/NodeLogs/internal/controller/validators"
	"github.com/Egor213/NodeLogs/internal/service"
	"github.com/labstack/echo/v4"
)

type viewerRoutes struct {
	viewers service.Viewers
}

func newViewerRoutes(g *echo.Group, viewers service.Viewers) {
	r := &viewerRoutes{viewers: viewers}

	vg := g.Group("/viewers")
	vg.POST("", r.create)
	vg.DELETE("/:id", r.delete)
	vg.PUT("/:id/node", r.selectNode)
	vg.PUT("/:id/filter", r.setFilter)
	vg.PUT("/:id/ceiling", r.setCeiling)
	vg.PUT("/:id/display", r.setDisplay)
	vg.POST("/:id/scroll", r.scroll)
	vg.POST("/:id/resize", r.resize)
	vg.POST("/:id/scroll-to-end", r.scrollToEnd)
	vg.DELETE("/:id/logs", r.clear)
	vg.GET("/:id/frame", r.frame)
}

type createResponse struct {
	ID string `json:"id"`
}

type selectNodeRequest struct {
	NodeID int `json:"node_id" validate:"gte=0"`
}

type filterRequest struct {
	Levels  []string `json:"levels"`
	Search  string   `json:"search" validate:"max=256"`
	MaxLogs *int     `json:"max_logs"`
}

type ceilingRequest struct {
	Ceiling string `json:"ceiling" validate:"required"`
}

type displayRequest struct {
	ShowTimestamps *bool `json:"show_timestamps"`
	AutoScroll     *bool `json:"auto_scroll"`
}

type scrollRequest struct {
	ScrollTop int `json:"scroll_top" validate:"gte=0"`
}

type resizeRequest struct {
	Height int `json:"height" validate:"gte=0,lte=100000"`
}

func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		logginghelper.LogRejected(c, err)
		return Err(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		logginghelper.LogRejected(c, err)
		return Err(http.StatusBadRequest, "invalid request", strings.Split(err.Error(), "\n")...)
	}
	return nil
}

func (r *viewerRoutes) create(c echo.Context) error {
	id, err := r.viewers.Create()
	if err != nil {
		return mapError(c, err)
	}
	logginghelper.LogRequest(c, id)
	return c.JSON(http.StatusCreated, createResponse{ID: id})
}

func (r *viewerRoutes) delete(c echo.Context) error {
	id := c.Param("id")
	if err := r.viewers.Delete(id); err != nil {
		return mapError(c, err)
	}
	logginghelper.LogRequest(c, id)
	return c.NoContent(http.StatusNoContent)
}

func (r *viewerRoutes) selectNode(c echo.Context) error {
	var req selectNodeRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	id := c.Param("id")
	if err := r.viewers.SelectNode(id, req.NodeID); err != nil {
		return mapError(c, err)
	}
	logginghelper.LogRequest(c, id)
	return c.NoContent(http.StatusNoContent)
}

func (r *viewerRoutes) setFilter(c echo.Context) error {
	var req filterRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	levels, err := validators.Levels(req.Levels)
	if err != nil {
		return mapError(c, err)
	}

	in := service.FilterInput{
		Levels:  levels,
		Search:  req.Search,
		MaxLogs: req.MaxLogs,
	}
	if err := r.viewers.SetFilter(c.Param("id"), in); err != nil {
		return mapError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (r *viewerRoutes) setCeiling(c echo.Context) error {
	var req ceilingRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	ceiling, err := validators.Ceiling(req.Ceiling)
	if err != nil {
		return mapError(c, err)
	}

	if err := r.viewers.SetCeiling(c.Param("id"), ceiling); err != nil {
		return mapError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (r *viewerRoutes) setDisplay(c echo.Context) error {
	var req displayRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	in := service.DisplayInput{
		ShowTimestamps: req.ShowTimestamps,
		AutoScroll:     req.AutoScroll,
	}
	if err := r.viewers.SetDisplay(c.Param("id"), in); err != nil {
		return mapError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (r *viewerRoutes) scroll(c echo.Context) error {
	var req scrollRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := r.viewers.Scroll(c.Param("id"), req.ScrollTop); err != nil {
		return mapError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (r *viewerRoutes) resize(c echo.Context) error {
	var req resizeRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := r.viewers.Resize(c.Param("id"), req.Height); err != nil {
		return mapError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (r *viewerRoutes) scrollToEnd(c echo.Context) error {
	if err := r.viewers.ScrollToEnd(c.Param("id")); err != nil {
		return mapError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (r *viewerRoutes) clear(c echo.Context) error {
	id := c.Param("id")
	if err := r.viewers.Clear(id); err != nil {
		return mapError(c, err)
	}
	logginghelper.LogRequest(c, id)
	return c.NoContent(http.StatusNoContent)
}

func (r *viewerRoutes) frame(c echo.Context) error {
	view, err := r.viewers.Frame(c.Param("id"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, view)
}
