package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/collegehub/internal/app/models/dto"
	"github.com/yigit/collegehub/internal/app/services"
	"github.com/yigit/collegehub/internal/middleware"
)

// CollegeController handles college directory requests
type CollegeController struct {
	collegeService services.CollegeService
}

// NewCollegeController creates a new CollegeController
func NewCollegeController(collegeService services.CollegeService) *CollegeController {
	return &CollegeController{
		collegeService: collegeService,
	}
}

// ListColleges lists colleges
// @Summary List colleges
// @Description Lists colleges filtered by location, course, fee range and name search
// @Tags colleges
// @Produce json
// @Param location query string false "Exact location"
// @Param course query string false "Exact course"
// @Param minFee query int false "Minimum fee, inclusive" minimum(0)
// @Param maxFee query int false "Maximum fee, inclusive" minimum(0)
// @Param search query string false "Case-insensitive part of the college name"
// @Param sortBy query string false "Sort order" Enums(fee-asc, fee-desc)
// @Success 200 {array} models.College
// @Failure 400 {object} dto.ErrorResponse "Invalid fee bound"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /colleges [get]
func (c *CollegeController) ListColleges(ctx *gin.Context) {
	var params dto.CollegeListQuery
	if err := ctx.ShouldBindQuery(&params); err != nil {
		middleware.HandleAPIError(ctx, dto.ErrInvalidFee)
		return
	}

	query, err := params.ToQuery()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	colleges, err := c.collegeService.ListColleges(ctx, query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, colleges)
}

// GetCollege returns one college
// @Summary Get a college
// @Tags colleges
// @Produce json
// @Param id path string true "College ID"
// @Success 200 {object} models.College
// @Failure 404 {object} dto.ErrorResponse "College not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /colleges/{id} [get]
func (c *CollegeController) GetCollege(ctx *gin.Context) {
	college, err := c.collegeService.GetCollege(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, college)
}
