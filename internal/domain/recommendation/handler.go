package recommendation

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/healthbridge/healthbridge/internal/platform/auth"
	"github.com/healthbridge/healthbridge/pkg/pagination"
)

// Handler exposes the guidance catalog for administration. The scoring
// engine reads the catalog through the Service directly, not over HTTP.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	admin := api.Group("/recommendations", auth.RequireRole("admin"))
	admin.GET("/coronary", h.ListCoronary)
	admin.PUT("/coronary", h.UpsertCoronary)
	admin.DELETE("/coronary/:id", h.DeleteCoronary)
	admin.GET("/stroke", h.ListStroke)
	admin.PUT("/stroke", h.UpsertStroke)
	admin.DELETE("/stroke/:id", h.DeleteStroke)
}

func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidKey):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

func idParam(c echo.Context) (uuid.UUID, *echo.HTTPError) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

func (h *Handler) ListCoronary(c echo.Context) error {
	p := pagination.FromContext(c)
	items, total, err := h.svc.ListCoronary(c.Request().Context(), p.Limit, p.Offset)
	if err != nil {
		return httpError(err)
	}
	if items == nil {
		items = []*CoronaryRecommendation{}
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, p.Limit, p.Offset))
}

func (h *Handler) UpsertCoronary(c echo.Context) error {
	var rec CoronaryRecommendation
	if err := c.Bind(&rec); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.UpsertCoronary(c.Request().Context(), &rec); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *Handler) DeleteCoronary(c echo.Context) error {
	id, herr := idParam(c)
	if herr != nil {
		return herr
	}
	if err := h.svc.DeleteCoronary(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListStroke(c echo.Context) error {
	p := pagination.FromContext(c)
	items, total, err := h.svc.ListStroke(c.Request().Context(), p.Limit, p.Offset)
	if err != nil {
		return httpError(err)
	}
	if items == nil {
		items = []*StrokeRecommendation{}
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, p.Limit, p.Offset))
}

func (h *Handler) UpsertStroke(c echo.Context) error {
	var rec StrokeRecommendation
	if err := c.Bind(&rec); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.UpsertStroke(c.Request().Context(), &rec); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *Handler) DeleteStroke(c echo.Context) error {
	id, herr := idParam(c)
	if herr != nil {
		return herr
	}
	if err := h.svc.DeleteStroke(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
