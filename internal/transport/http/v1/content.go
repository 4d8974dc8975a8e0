package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/geallenboy/ai-n8n/enricher/internal/domain"
)

// AnalyzeContent generates the bilingual summary, interpretation and tutorial.
// POST /v1/content-analysis
func (h *Handler) AnalyzeContent(c echo.Context) error {
	var doc domain.WorkflowDocument
	if err := c.Bind(&doc); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid_request", "invalid request body")
	}
	if doc.Definition == nil {
		return errorJSON(c, http.StatusBadRequest, "invalid_request", "workflow is required")
	}

	bundle, err := h.service.AnalyzeContent(c.Request().Context(), doc)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, bundle)
}
