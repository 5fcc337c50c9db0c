package routes

import (
	"github.com/thats-dominik/athlena/controllers"
	"github.com/thats-dominik/athlena/middlewares"
	"github.com/thats-dominik/athlena/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter builds every service once and wires the HTTP surface.
func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	ai := services.NewOpenAIService()
	nutritionSvc := services.NewNutritionService(ai)
	goalSvc := services.NewGoalService(ai)
	infoSvc := services.NewUserInfoService(db)
	mealSvc := services.NewMealService(db)
	waterSvc := services.NewWaterService(db)
	authSvc := services.NewAuthService(db)

	aiCtrl := controllers.NewAIController(nutritionSvc)
	goalCtrl := controllers.NewGoalController(goalSvc, infoSvc)
	mealCtrl := controllers.NewMealController(mealSvc)
	waterCtrl := controllers.NewWaterController(waterSvc)
	authCtrl := controllers.NewAuthController(authSvc)
	userCtrl := controllers.NewUserController(infoSvc)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtrl.Register)
		auth.POST("/login", authCtrl.Login)
		auth.POST("/forgot-password", authCtrl.ForgotPassword)
		auth.POST("/reset-password", authCtrl.ResetPassword)
	}

	protected := r.Group("/")
	protected.Use(middlewares.AuthMiddleware(db))
	{
		protected.POST("/ai/analyze-meal", aiCtrl.AnalyzeMeal)

		protected.POST("/goals/calculate", goalCtrl.CalculateGoals)
		protected.GET("/goals", goalCtrl.GetGoals)
		protected.PUT("/goals", goalCtrl.UpdateGoals)

		protected.POST("/meals", mealCtrl.LogMeal)
		protected.GET("/meals", mealCtrl.ListMeals)
		protected.GET("/meals/range", mealCtrl.ListMealsByRange)
		protected.GET("/meals/summary", mealCtrl.GetDailySummary)
		protected.GET("/meals/:id", mealCtrl.GetMeal)
		protected.PUT("/meals/:id", mealCtrl.UpdateMeal)
		protected.DELETE("/meals/:id", mealCtrl.DeleteMeal)

		protected.GET("/water", waterCtrl.GetWaterIntake)
		protected.PUT("/water", waterCtrl.SetWaterIntake)

		protected.GET("/user/profile", userCtrl.GetProfile)
		protected.PUT("/user/profile", userCtrl.UpdateProfile)
	}

	return r
}
