package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/casabierta/realty-api/internal/api/metrics"
	"github.com/casabierta/realty-api/internal/api/middleware"
	"github.com/casabierta/realty-api/internal/core/domain"
	"github.com/casabierta/realty-api/internal/core/ports"
)

// PropertyHandler handles public browsing and admin CRUD on listings.
type PropertyHandler struct {
	properties ports.PropertyService
	access     ports.AccessService
}

func NewPropertyHandler(properties ports.PropertyService, access ports.AccessService) *PropertyHandler {
	return &PropertyHandler{properties: properties, access: access}
}

// List handles GET /v1/properties — listings visible to the caller.
//
// @Summary      Browse visible listings
// @Tags         properties
// @Produce      json
// @Param        city       query     string  false  "Filter by city"
// @Param        max_price  query     number  false  "Maximum price"
// @Param        page       query     int     false  "Page (1-based)"
// @Param        limit      query     int     false  "Page size (max 100)"
// @Success      200        {object}  listPropertiesResponse
// @Failure      429        {object}  errorResponse
// @Router       /v1/properties [get]
func (h *PropertyHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	maxPrice, _ := strconv.ParseFloat(c.QueryParam("max_price"), 64)

	result, err := h.properties.ListProperties(c.Request().Context(), ports.ListPropertiesInput{
		Identity: middleware.ContextIdentity(c),
		City:     c.QueryParam("city"),
		MaxPrice: maxPrice,
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return err
	}

	items := make([]propertyResponse, 0, len(result.Items))
	for _, p := range result.Items {
		items = append(items, toPropertyResponse(p))
	}

	return c.JSON(http.StatusOK, listPropertiesResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

// Get handles GET /v1/properties/:id. The access decision maps directly to
// HTTP codes here; the caller-facing decision contract with a 200 envelope
// lives on the access handler.
//
// @Summary      Get a listing by id
// @Tags         properties
// @Produce      json
// @Param        id   path      string  true  "Property id"
// @Success      200  {object}  propertyResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/properties/{id} [get]
func (h *PropertyHandler) Get(c echo.Context) error {
	id := c.Param("id")
	identity := middleware.ContextIdentity(c)

	decision, err := h.access.Check(c.Request().Context(), id, identity)
	if err != nil {
		return err
	}
	metrics.AccessDecisionsTotal.WithLabelValues(string(decision)).Inc()

	switch decision {
	case domain.AccessNotFound:
		return domain.ErrPropertyNotFound
	case domain.AccessUnauthenticated:
		return domain.ErrUnauthenticated
	case domain.AccessUnauthorized:
		return domain.ErrUnauthorized
	}

	p, err := h.properties.GetProperty(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPropertyResponse(p))
}

// Create handles POST /v1/admin/properties.
//
// @Summary      Create a listing
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      propertyRequest  true  "Listing details"
// @Success      201   {object}  createPropertyResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/admin/properties [post]
func (h *PropertyHandler) Create(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req propertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.properties.CreateProperty(c.Request().Context(), toPropertyInput(req), actor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createPropertyResponse{ID: id})
}

// Update handles PUT /v1/admin/properties/:id.
//
// @Summary      Update a listing
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      string           true  "Property id"
// @Param        body  body      propertyRequest  true  "Listing details"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/admin/properties/{id} [put]
func (h *PropertyHandler) Update(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req propertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.properties.UpdateProperty(c.Request().Context(), c.Param("id"), toPropertyInput(req), actor); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "property updated"})
}

// Delete handles DELETE /v1/admin/properties/:id.
//
// @Summary      Delete a listing
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "Property id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/admin/properties/{id} [delete]
func (h *PropertyHandler) Delete(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.properties.DeleteProperty(c.Request().Context(), c.Param("id"), actor); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "property deleted"})
}

func toPropertyInput(req propertyRequest) ports.PropertyInput {
	return ports.PropertyInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Currency:    req.Currency,
		Location: ports.AddressInput{
			Address: req.Location.Address,
			City:    req.Location.City,
			State:   req.Location.State,
			ZipCode: req.Location.ZipCode,
			Coordinates: ports.CoordinatesInput{
				Lat: req.Location.Coordinates.Lat,
				Lng: req.Location.Coordinates.Lng,
			},
		},
		AreaSqM:      req.AreaSqM,
		Bedrooms:     req.Bedrooms,
		Bathrooms:    req.Bathrooms,
		Images:       req.Images,
		IsPublic:     req.IsPublic,
		AllowedUsers: req.AllowedUsers,
	}
}

func toPropertyResponse(p *domain.Property) propertyResponse {
	return propertyResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Currency:    p.Currency,
		Location: addressResponse{
			Address: p.Location.Address,
			City:    p.Location.City,
			State:   p.Location.State,
			ZipCode: p.Location.ZipCode,
			Coordinates: coordinatesResponse{
				Lat: p.Location.Coordinates.Lat,
				Lng: p.Location.Coordinates.Lng,
			},
		},
		AreaSqM:   p.AreaSqM,
		Bedrooms:  p.Bedrooms,
		Bathrooms: p.Bathrooms,
		Images:    p.Images,
		IsPublic:  p.IsPublic,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
