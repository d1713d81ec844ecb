package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/terravista/realty-api/internal/api/metrics"
	"github.com/terravista/realty-api/internal/core/domain"
	"github.com/terravista/realty-api/internal/core/ports"
)

// InquiryHandler handles lead submission and triage.
type InquiryHandler struct {
	service ports.InquiryService
}

func NewInquiryHandler(service ports.InquiryService) *InquiryHandler {
	return &InquiryHandler{service: service}
}

func toInquiryResponse(i *domain.Inquiry) inquiryResponse {
	return inquiryResponse{
		ID:         i.ID,
		Name:       i.Name,
		Email:      i.Email,
		Phone:      i.Phone,
		Message:    i.Message,
		PropertyID: i.PropertyID,
		Status:     string(i.Status),
		CreatedAt:  i.CreatedAt,
	}
}

// Create handles the public contact form: POST /api/inquiries.
//
// @Summary      Submit an inquiry
// @Tags         inquiries
// @Accept       json
// @Produce      json
// @Param        body  body      inquiryRequest  true  "Inquiry details"
// @Success      201   {object}  inquiryResponse
// @Failure      400   {object}  errorEnvelope
// @Router       /api/inquiries [post]
func (h *InquiryHandler) Create(c echo.Context) error {
	var req inquiryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	inquiry, err := h.service.Create(c.Request().Context(), ports.CreateInquiryInput{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Message:    req.Message,
		PropertyID: req.PropertyID,
	})
	if err != nil {
		return err
	}

	metrics.InquiriesReceivedTotal.Inc()
	return c.JSON(http.StatusCreated, toInquiryResponse(inquiry))
}

// List handles GET /api/admin/inquiries with an optional status filter.
//
// @Summary      List inquiries
// @Tags         inquiries
// @Produce      json
// @Param        status  query     string  false  "Filter by status"  Enums(new, contacted, closed)
// @Success      200     {array}   inquiryResponse
// @Failure      400     {object}  errorEnvelope
// @Router       /api/admin/inquiries [get]
func (h *InquiryHandler) List(c echo.Context) error {
	inquiries, err := h.service.List(c.Request().Context(), domain.InquiryStatus(c.QueryParam("status")))
	if err != nil {
		return err
	}

	out := make([]inquiryResponse, 0, len(inquiries))
	for i := range inquiries {
		out = append(out, toInquiryResponse(&inquiries[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// UpdateStatus handles PATCH /api/admin/inquiries/:id/status.
//
// @Summary      Update inquiry status
// @Tags         inquiries
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Inquiry id"
// @Param        body  body      inquiryStatusRequest  true  "New status"
// @Success      200   {object}  inquiryResponse
// @Failure      400   {object}  errorEnvelope
// @Failure      404   {object}  errorEnvelope
// @Router       /api/admin/inquiries/{id}/status [patch]
func (h *InquiryHandler) UpdateStatus(c echo.Context) error {
	var req inquiryStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	inquiry, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toInquiryResponse(inquiry))
}

// Delete handles DELETE /api/admin/inquiries/:id.
//
// @Summary      Delete an inquiry
// @Tags         inquiries
// @Produce      json
// @Param        id   path      string  true  "Inquiry id"
// @Success      200  {object}  statusResponse
// @Failure      404  {object}  errorEnvelope
// @Router       /api/admin/inquiries/{id} [delete]
func (h *InquiryHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Success: true, Message: "inquiry deleted"})
}
