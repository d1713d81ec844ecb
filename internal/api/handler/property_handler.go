package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/terravista/realty-api/internal/core/domain"
	"github.com/terravista/realty-api/internal/core/ports"
)

// PropertyHandler handles the public catalogue and its back-office CRUD.
type PropertyHandler struct {
	service ports.PropertyService
}

func NewPropertyHandler(service ports.PropertyService) *PropertyHandler {
	return &PropertyHandler{service: service}
}

func toPropertyResponse(p *domain.Property) propertyResponse {
	return propertyResponse{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Description: p.Description,
		Location:    p.Location,
		PriceRange:  p.PriceRange,
		Status:      string(p.Status),
		Amenities:   p.Amenities,
		ImageIDs:    p.ImageIDs,
		VideoID:     p.VideoID,
		Featured:    p.Featured,
		Views:       p.Views,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// List handles GET /api/properties with optional status/featured filters.
//
// @Summary      List properties
// @Tags         properties
// @Produce      json
// @Param        status    query     string  false  "Filter by status"  Enums(upcoming, available, sold_out)
// @Param        featured  query     bool    false  "Only featured"
// @Param        page      query     int     false  "Page (1-based)"
// @Param        limit     query     int     false  "Page size"
// @Success      200       {object}  listPropertiesResponse
// @Router       /api/properties [get]
func (h *PropertyHandler) List(c echo.Context) error {
	filter := ports.PropertyFilter{
		Status: domain.PropertyStatus(c.QueryParam("status")),
	}
	if raw := c.QueryParam("featured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "featured must be a boolean")
		}
		filter.Featured = &featured
	}
	filter.Page, _ = strconv.Atoi(c.QueryParam("page"))
	filter.Limit, _ = strconv.Atoi(c.QueryParam("limit"))

	page, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	items := make([]propertyResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, toPropertyResponse(&page.Items[i]))
	}

	return c.JSON(http.StatusOK, listPropertiesResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      page.Total,
			Page:       page.Page,
			Limit:      page.Limit,
			TotalPages: page.TotalPages,
		},
	})
}

// Get handles GET /api/properties/:id.
//
// @Summary      Get a property by id
// @Tags         properties
// @Produce      json
// @Param        id   path      string  true  "Property id"
// @Success      200  {object}  propertyResponse
// @Failure      404  {object}  errorEnvelope
// @Router       /api/properties/{id} [get]
func (h *PropertyHandler) Get(c echo.Context) error {
	property, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPropertyResponse(property))
}

// GetBySlug handles GET /api/properties/slug/:slug, counting the view.
//
// @Summary      Get a property by slug
// @Tags         properties
// @Produce      json
// @Param        slug  path      string  true  "Property slug"
// @Success      200   {object}  propertyResponse
// @Failure      404   {object}  errorEnvelope
// @Router       /api/properties/slug/{slug} [get]
func (h *PropertyHandler) GetBySlug(c echo.Context) error {
	property, err := h.service.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPropertyResponse(property))
}

// Create handles POST /api/admin/properties.
//
// @Summary      Create a property
// @Tags         properties
// @Accept       json
// @Produce      json
// @Param        body  body      propertyRequest  true  "Property details"
// @Success      201   {object}  propertyResponse
// @Failure      400   {object}  errorEnvelope
// @Router       /api/admin/properties [post]
func (h *PropertyHandler) Create(c echo.Context) error {
	input, err := bindPropertyInput(c)
	if err != nil {
		return err
	}

	property, err := h.service.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toPropertyResponse(property))
}

// Update handles PUT /api/admin/properties/:id.
//
// @Summary      Update a property
// @Tags         properties
// @Accept       json
// @Produce      json
// @Param        id    path      string           true  "Property id"
// @Param        body  body      propertyRequest  true  "Property details"
// @Success      200   {object}  propertyResponse
// @Failure      400   {object}  errorEnvelope
// @Failure      404   {object}  errorEnvelope
// @Router       /api/admin/properties/{id} [put]
func (h *PropertyHandler) Update(c echo.Context) error {
	input, err := bindPropertyInput(c)
	if err != nil {
		return err
	}

	property, err := h.service.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPropertyResponse(property))
}

// Delete handles DELETE /api/admin/properties/:id.
//
// @Summary      Delete a property
// @Tags         properties
// @Produce      json
// @Param        id   path      string  true  "Property id"
// @Success      200  {object}  statusResponse
// @Failure      404  {object}  errorEnvelope
// @Router       /api/admin/properties/{id} [delete]
func (h *PropertyHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Success: true, Message: "property deleted"})
}

func bindPropertyInput(c echo.Context) (ports.CreatePropertyInput, error) {
	var req propertyRequest
	if err := c.Bind(&req); err != nil {
		return ports.CreatePropertyInput{}, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return ports.CreatePropertyInput{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return ports.CreatePropertyInput{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		Location:    req.Location,
		PriceRange:  req.PriceRange,
		Status:      req.Status,
		Amenities:   req.Amenities,
		ImageIDs:    req.ImageIDs,
		VideoID:     req.VideoID,
		Featured:    req.Featured,
	}, nil
}
