package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/casabierta/realty-api/internal/api/metrics"
	"github.com/casabierta/realty-api/internal/api/middleware"
	"github.com/casabierta/realty-api/internal/core/ports"
)

type leadRequest struct {
	Name       string `json:"name"        validate:"required"`
	Email      string `json:"email"       validate:"required,email"`
	Phone      string `json:"phone"`
	Message    string `json:"message"     validate:"required"`
	PropertyID string `json:"property_id"`
	Consent    bool   `json:"consent"`
}

type leadResponse struct {
	ID string `json:"id"`
}

// LeadHandler captures contact-form submissions. The tight rate-limit policy
// is applied on the route, not here.
type LeadHandler struct {
	leads ports.LeadService
}

func NewLeadHandler(leads ports.LeadService) *LeadHandler {
	return &LeadHandler{leads: leads}
}

// Capture handles POST /v1/leads.
//
// @Summary      Submit a contact-form lead
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        body  body      leadRequest  true  "Lead details"
// @Success      201   {object}  leadResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /v1/leads [post]
func (h *LeadHandler) Capture(c echo.Context) error {
	var req leadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.leads.Capture(c.Request().Context(), ports.LeadInput{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Message:    req.Message,
		PropertyID: req.PropertyID,
		Consent:    req.Consent,
		ClientIP:   middleware.ClientIP(c),
	})
	if err != nil {
		return err
	}

	metrics.LeadsCapturedTotal.Inc()
	return c.JSON(http.StatusCreated, leadResponse{ID: id})
}
