package routes

import (
	"github.com/Calorties/calorties-api/controllers"
	"github.com/Calorties/calorties-api/middlewares"
	"github.com/Calorties/calorties-api/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RouterDeps struct {
	DB       *gorm.DB
	Tokens   *utils.TokenIssuer
	Auth     *controllers.AuthController
	Users    *controllers.UserController
	Foods    *controllers.FoodController
	Calories *controllers.CalorieController
}

func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.Default()

	// Public auth routes
	r.POST("/register", deps.Auth.Register)
	r.POST("/login", deps.Auth.Login)

	// Protected routes
	authed := r.Group("/")
	authed.Use(middlewares.AuthMiddleware(deps.DB, deps.Tokens))
	{
		authed.POST("/logout", deps.Auth.Logout)

		authed.POST("/users", deps.Users.Create)
		authed.PUT("/users/:id", deps.Users.Update)
		authed.POST("/users/profile-image", deps.Users.UploadProfileImage)
		authed.PUT("/users/profile-image/:id", deps.Users.UploadProfileImage)

		authed.GET("/foods", deps.Foods.List)
		authed.GET("/foods/daily", deps.Foods.Daily)

		authed.POST("/calories", deps.Calories.Record)
		authed.GET("/calories/summary-day", deps.Calories.SummaryDay)
		authed.GET("/calories/summary-week", deps.Calories.SummaryWeek)
	}

	return r
}
