package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/casabierta/realty-api/internal/api/metrics"
	"github.com/casabierta/realty-api/internal/api/middleware"
	"github.com/casabierta/realty-api/internal/core/ports"
)

// AccessHandler exposes the authorization decision to page-rendering callers.
// Unlike the property endpoint, every decision outcome is returned with 200
// and a status field; the caller interprets it for redirect purposes.
type AccessHandler struct {
	access ports.AccessService
}

func NewAccessHandler(access ports.AccessService) *AccessHandler {
	return &AccessHandler{access: access}
}

// Check handles GET /v1/access/check?property_id=...
//
// @Summary      Check property access for the current session
// @Tags         access
// @Produce      json
// @Param        property_id  query     string  true  "Property id"
// @Success      200          {object}  accessCheckResponse
// @Failure      400          {object}  errorResponse
// @Failure      500          {object}  accessCheckResponse
// @Router       /v1/access/check [get]
func (h *AccessHandler) Check(c echo.Context) error {
	propertyID := c.QueryParam("property_id")
	if propertyID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "property_id is required")
	}

	decision, err := h.access.Check(c.Request().Context(), propertyID, middleware.ContextIdentity(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, accessCheckResponse{
			Status:  "error",
			Message: "internal error",
		})
	}

	metrics.AccessDecisionsTotal.WithLabelValues(string(decision)).Inc()
	return c.JSON(http.StatusOK, accessCheckResponse{Status: string(decision)})
}
