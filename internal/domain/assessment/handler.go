package assessment

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/healthbridge/healthbridge/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	grp := api.Group("", auth.RequireRole("admin", "physician", "nurse"))
	grp.GET("/assessments/coronary", h.CoronaryHistory)
	grp.GET("/assessments/diabetic", h.DiabeticHistory)
	grp.GET("/assessments/liver", h.LiverHistory)
	grp.GET("/assessments/stroke", h.StrokeHistory)

	grp.POST("/assessments/coronary", h.CreateCoronary)
	grp.POST("/assessments/diabetic", h.CreateDiabetic)
	grp.POST("/assessments/liver", h.CreateLiver)
	grp.POST("/assessments/stroke", h.CreateStroke)
}

func httpError(err error) *echo.HTTPError {
	if IsValidationError(err) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

// subjectParam parses the subject_id query parameter for history reads.
func subjectParam(c echo.Context) (uuid.UUID, *echo.HTTPError) {
	id, err := uuid.Parse(c.QueryParam("subject_id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid subject_id")
	}
	return id, nil
}

func historyLimit(c echo.Context) int {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	return limit
}

// -- Coronary --

type createCoronaryRequest struct {
	SubjectID uuid.UUID `json:"subject_id"`
	CoronaryInput
}

func (h *Handler) CreateCoronary(c echo.Context) error {
	var req createCoronaryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	a, err := h.svc.CreateCoronary(c.Request().Context(), req.SubjectID, req.CoronaryInput)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *Handler) CoronaryHistory(c echo.Context) error {
	subjectID, herr := subjectParam(c)
	if herr != nil {
		return herr
	}
	views, err := h.svc.CoronaryHistory(c.Request().Context(), subjectID, historyLimit(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, views)
}

// -- Diabetic --

type createDiabeticRequest struct {
	SubjectID uuid.UUID `json:"subject_id"`
	DiabeticInput
}

func (h *Handler) CreateDiabetic(c echo.Context) error {
	var req createDiabeticRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	a, err := h.svc.CreateDiabetic(c.Request().Context(), req.SubjectID, req.DiabeticInput)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *Handler) DiabeticHistory(c echo.Context) error {
	subjectID, herr := subjectParam(c)
	if herr != nil {
		return herr
	}
	items, err := h.svc.DiabeticHistory(c.Request().Context(), subjectID, historyLimit(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

// -- Liver --

type createLiverRequest struct {
	SubjectID uuid.UUID `json:"subject_id"`
	LiverInput
}

func (h *Handler) CreateLiver(c echo.Context) error {
	var req createLiverRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	a, err := h.svc.CreateLiver(c.Request().Context(), req.SubjectID, req.LiverInput)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *Handler) LiverHistory(c echo.Context) error {
	subjectID, herr := subjectParam(c)
	if herr != nil {
		return herr
	}
	items, err := h.svc.LiverHistory(c.Request().Context(), subjectID, historyLimit(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

// -- Stroke --

type createStrokeRequest struct {
	SubjectID uuid.UUID `json:"subject_id"`
	StrokeInput
}

func (h *Handler) CreateStroke(c echo.Context) error {
	var req createStrokeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	a, err := h.svc.CreateStroke(c.Request().Context(), req.SubjectID, req.StrokeInput)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *Handler) StrokeHistory(c echo.Context) error {
	subjectID, herr := subjectParam(c)
	if herr != nil {
		return herr
	}
	views, err := h.svc.StrokeHistory(c.Request().Context(), subjectID, historyLimit(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, views)
}
