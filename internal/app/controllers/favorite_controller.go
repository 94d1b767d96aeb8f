package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/collegehub/internal/app/models/dto"
	"github.com/yigit/collegehub/internal/app/services"
	"github.com/yigit/collegehub/internal/middleware"
)

const removedFromFavorites = "Removed from favorites"

// FavoriteController handles favorite requests. Without a userId every call acts on
// the default user.
type FavoriteController struct {
	favoriteService services.FavoriteService
}

// NewFavoriteController creates a new FavoriteController
func NewFavoriteController(favoriteService services.FavoriteService) *FavoriteController {
	return &FavoriteController{
		favoriteService: favoriteService,
	}
}

// ListFavorites lists a user's favorites
// @Summary List favorites
// @Description Lists the user's favorites with their colleges embedded under collegeId
// @Tags favorites
// @Produce json
// @Param userId query string false "User ID" default(default-user)
// @Success 200 {array} dto.FavoriteResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /favorites [get]
func (c *FavoriteController) ListFavorites(ctx *gin.Context) {
	favorites, err := c.favoriteService.ListFavorites(ctx, ctx.Query("userId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewFavoriteResponses(favorites))
}

// AddFavorite favorites a college
// @Summary Add a favorite
// @Tags favorites
// @Accept json
// @Produce json
// @Param request body dto.AddFavoriteRequest true "College to favorite"
// @Success 201 {object} dto.FavoriteResponse
// @Failure 400 {object} dto.ErrorResponse "College ID missing or already in favorites"
// @Failure 404 {object} dto.ErrorResponse "College not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /favorites [post]
func (c *FavoriteController) AddFavorite(ctx *gin.Context) {
	var req dto.AddFavoriteRequest
	if err := bindJSON(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, dto.ErrInvalidRequestBody)
		return
	}

	favorite, err := c.favoriteService.AddFavorite(ctx, req.CollegeID, req.UserID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewFavoriteResponse(favorite))
}

// RemoveFavorite deletes a favorite by id
// @Summary Remove a favorite
// @Tags favorites
// @Produce json
// @Param id path string true "Favorite ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Favorite not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /favorites/{id} [delete]
func (c *FavoriteController) RemoveFavorite(ctx *gin.Context) {
	if err := c.favoriteService.RemoveFavorite(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: removedFromFavorites})
}

// RemoveFavoriteByCollege deletes the user's favorite for a college
// @Summary Remove a favorite by college
// @Tags favorites
// @Produce json
// @Param collegeId path string true "College ID"
// @Param userId query string false "User ID" default(default-user)
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Favorite not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /favorites/college/{collegeId} [delete]
func (c *FavoriteController) RemoveFavoriteByCollege(ctx *gin.Context) {
	err := c.favoriteService.RemoveFavoriteByCollege(ctx, ctx.Param("collegeId"), ctx.Query("userId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: removedFromFavorites})
}
