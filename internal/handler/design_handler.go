package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"design-service/internal/design"
	"design-service/internal/recommend"
	"design-service/internal/report"
	"design-service/internal/store"
	"design-service/pkg/logger"
	"design-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// DesignHandler serves design generation, retrieval and export endpoints.
type DesignHandler struct {
	recommender *recommend.Service
	designs     *store.DesignStore
	templates   *store.TemplateStore
}

func NewDesignHandler(recommender *recommend.Service, designs *store.DesignStore, templates *store.TemplateStore) *DesignHandler {
	return &DesignHandler{
		recommender: recommender,
		designs:     designs,
		templates:   templates,
	}
}

// Generate handles POST /api/designs/generate
func (h *DesignHandler) Generate(c echo.Context) error {
	log := logger.FromContext(c)

	var req recommend.GenerateRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}
	if req.SessionID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "session_id is required",
		})
	}

	record, err := h.recommender.Generate(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"error": "Session or template not found",
			})
		}
		if design.IsConfigurationError(err) {
			log.Error("Template configuration rejected", zap.Error(err))
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{
				"error": err.Error(),
			})
		}
		log.Error("Design generation failed",
			zap.Uint("session_id", req.SessionID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Design generation failed",
		})
	}

	log.Info("Design generated",
		zap.Uint("design_id", record.DesignID),
		zap.Float64("total_cost", record.TotalCost))
	return c.JSON(http.StatusCreated, record)
}

// Get handles GET /api/designs/:id
func (h *DesignHandler) Get(c echo.Context) error {
	log := logger.FromContext(c)

	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid design ID",
		})
	}

	detail, err := h.recommender.Details(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"error": "Design recommendation not found",
			})
		}
		log.Error("Failed to load design details", zap.Uint("design_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve design details",
		})
	}

	return c.JSON(http.StatusOK, detail)
}

// ListBySession handles GET /api/sessions/:id/designs
func (h *DesignHandler) ListBySession(c echo.Context) error {
	log := logger.FromContext(c)

	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid session ID",
		})
	}

	designs, err := h.designs.ListBySession(c.Request().Context(), id)
	if err != nil {
		log.Error("Failed to list designs", zap.Uint("session_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve designs",
		})
	}

	return c.JSON(http.StatusOK, designs)
}

// ExportPDF handles GET /api/designs/:id/export-pdf
func (h *DesignHandler) ExportPDF(c echo.Context) error {
	log := logger.FromContext(c)

	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid design ID",
		})
	}

	rec, err := h.designs.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"error": "Design recommendation not found",
			})
		}
		log.Error("Failed to load design for export", zap.Uint("design_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve design",
		})
	}

	payload, err := report.PDF(rec)
	if err != nil {
		log.Error("PDF export failed", zap.Uint("design_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to generate PDF report",
		})
	}

	prometheus.RecordReportExport("pdf")
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="design_%d.pdf"`, id))
	return c.Blob(http.StatusOK, "application/pdf", payload)
}

// ExportXLSX handles GET /api/designs/:id/export-xlsx
func (h *DesignHandler) ExportXLSX(c echo.Context) error {
	log := logger.FromContext(c)

	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid design ID",
		})
	}

	rec, err := h.designs.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"error": "Design recommendation not found",
			})
		}
		log.Error("Failed to load design for export", zap.Uint("design_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve design",
		})
	}

	payload, err := report.XLSX(rec)
	if err != nil {
		log.Error("XLSX export failed", zap.Uint("design_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to generate XLSX report",
		})
	}

	prometheus.RecordReportExport("xlsx")
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="design_%d_costs.xlsx"`, id))
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", payload)
}

// ListTemplates handles GET /api/templates
func (h *DesignHandler) ListTemplates(c echo.Context) error {
	log := logger.FromContext(c)

	templates, err := h.templates.List(c.Request().Context())
	if err != nil {
		log.Error("Failed to list templates", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve templates",
		})
	}

	return c.JSON(http.StatusOK, templates)
}

func parseID(c echo.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
