package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/geallenboy/ai-n8n/enricher/internal/domain"
)

// TranslateFields translates a record's text fields.
// POST /v1/translations
func (h *Handler) TranslateFields(c echo.Context) error {
	var req domain.FieldTranslationRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid_request", "invalid request body")
	}
	if req.Fields == nil {
		return errorJSON(c, http.StatusBadRequest, "invalid_request", "fields is required")
	}

	res, err := h.service.TranslateFields(c.Request().Context(), req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, res)
}
