package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/terravista/realty-api/internal/core/domain"
	"github.com/terravista/realty-api/internal/core/ports"
)

// ReviewHandler handles testimonial submission and moderation.
type ReviewHandler struct {
	service ports.ReviewService
}

func NewReviewHandler(service ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

func toReviewResponse(r *domain.Review) reviewResponse {
	return reviewResponse{
		ID:        r.ID,
		Author:    r.Author,
		Rating:    r.Rating,
		Comment:   r.Comment,
		Approved:  r.Approved,
		CreatedAt: r.CreatedAt,
	}
}

// Create handles the public review form: POST /api/reviews.
//
// @Summary      Submit a review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        body  body      reviewRequest  true  "Review details"
// @Success      201   {object}  reviewResponse
// @Failure      400   {object}  errorEnvelope
// @Router       /api/reviews [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	review, err := h.service.Create(c.Request().Context(), ports.CreateReviewInput{
		Author:  req.Author,
		Email:   req.Email,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toReviewResponse(review))
}

// ListPublic handles GET /api/reviews — approved reviews only.
//
// @Summary      List approved reviews
// @Tags         reviews
// @Produce      json
// @Success      200  {array}  reviewResponse
// @Router       /api/reviews [get]
func (h *ReviewHandler) ListPublic(c echo.Context) error {
	return h.list(c, true)
}

// ListAll handles GET /api/admin/reviews — the moderation queue.
//
// @Summary      List all reviews
// @Tags         reviews
// @Produce      json
// @Success      200  {array}  reviewResponse
// @Router       /api/admin/reviews [get]
func (h *ReviewHandler) ListAll(c echo.Context) error {
	return h.list(c, false)
}

func (h *ReviewHandler) list(c echo.Context, approvedOnly bool) error {
	reviews, err := h.service.List(c.Request().Context(), approvedOnly)
	if err != nil {
		return err
	}

	out := make([]reviewResponse, 0, len(reviews))
	for i := range reviews {
		out = append(out, toReviewResponse(&reviews[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// Approve handles POST /api/admin/reviews/:id/approve.
//
// @Summary      Approve a review
// @Tags         reviews
// @Produce      json
// @Param        id   path      string  true  "Review id"
// @Success      200  {object}  reviewResponse
// @Failure      404  {object}  errorEnvelope
// @Router       /api/admin/reviews/{id}/approve [post]
func (h *ReviewHandler) Approve(c echo.Context) error {
	review, err := h.service.Approve(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toReviewResponse(review))
}

// Delete handles DELETE /api/admin/reviews/:id.
//
// @Summary      Delete a review
// @Tags         reviews
// @Produce      json
// @Param        id   path      string  true  "Review id"
// @Success      200  {object}  statusResponse
// @Failure      404  {object}  errorEnvelope
// @Router       /api/admin/reviews/{id} [delete]
func (h *ReviewHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Success: true, Message: "review deleted"})
}
