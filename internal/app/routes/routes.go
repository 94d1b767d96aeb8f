package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/collegehub/internal/app/controllers"
)

// Controllers groups the handlers mounted under /api
type Controllers struct {
	College  *controllers.CollegeController
	Review   *controllers.ReviewController
	Favorite *controllers.FavoriteController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers) {
	api := router.Group("/api")

	api.GET("/health", controllers.Health)

	colleges := api.Group("/colleges")
	{
		colleges.GET("", c.College.ListColleges)
		colleges.GET("/:id", c.College.GetCollege)
	}

	reviews := api.Group("/reviews")
	{
		reviews.GET("", c.Review.ListReviews)
		reviews.POST("", c.Review.CreateReview)
	}

	favorites := api.Group("/favorites")
	{
		favorites.GET("", c.Favorite.ListFavorites)
		favorites.POST("", c.Favorite.AddFavorite)
		favorites.DELETE("/:id", c.Favorite.RemoveFavorite)
		favorites.DELETE("/college/:collegeId", c.Favorite.RemoveFavoriteByCollege)
	}
}
