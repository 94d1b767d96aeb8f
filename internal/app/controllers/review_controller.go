package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/collegehub/internal/app/models/dto"
	"github.com/yigit/collegehub/internal/app/services"
	"github.com/yigit/collegehub/internal/middleware"
)

// ReviewController handles review requests
type ReviewController struct {
	reviewService services.ReviewService
}

// NewReviewController creates a new ReviewController
func NewReviewController(reviewService services.ReviewService) *ReviewController {
	return &ReviewController{
		reviewService: reviewService,
	}
}

// ListReviews lists reviews
// @Summary List reviews
// @Description Lists every review, newest first
// @Tags reviews
// @Produce json
// @Success 200 {array} models.Review
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reviews [get]
func (c *ReviewController) ListReviews(ctx *gin.Context) {
	reviews, err := c.reviewService.ListReviews(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, reviews)
}

// CreateReview submits a review
// @Summary Submit a review
// @Tags reviews
// @Accept json
// @Produce json
// @Param request body dto.CreateReviewRequest true "Review"
// @Success 201 {object} models.Review
// @Failure 400 {object} dto.ErrorResponse "Missing field or rating out of range"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reviews [post]
func (c *ReviewController) CreateReview(ctx *gin.Context) {
	var req dto.CreateReviewRequest
	if err := bindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, dto.ErrInvalidRequestBody)
		return
	}

	review, err := c.reviewService.CreateReview(ctx, req.ToInput())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, review)
}
