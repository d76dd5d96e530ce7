package routes

import (
    "backend/controllers"
    "backend/middlewares"

    "github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
    r := gin.Default()

    // Public routes
    r.POST("/register", controllers.Register)
    r.POST("/login", controllers.Login)
    r.POST("/logout", controllers.Logout)
    r.POST("/forgot_password", controllers.ForgotPassword)
    r.POST("/reset_password", controllers.ResetPassword)

    r.GET("/", controllers.ListFoods)
    r.GET("/categories", controllers.ListCategories)

    // Protected routes
    authed := r.Group("/")
    authed.Use(middlewares.AuthMiddleware())
    {
        authed.GET("/food/:id", controllers.GetFood)
        authed.POST("/food/add", controllers.AddFood)

        authed.GET("/food_log", controllers.GetFoodLog)
        authed.POST("/food_log", controllers.AddFoodLog)
        authed.GET("/food_log/delete/:id", controllers.ConfirmDeleteFoodLog)
        authed.POST("/food_log/delete/:id", controllers.DeleteFoodLog)

        authed.GET("/weight_log", controllers.GetWeightLog)
        authed.POST("/weight_log", controllers.AddWeight)
        authed.GET("/weight_log/delete/:id", controllers.ConfirmDeleteWeight)
        authed.POST("/weight_log/delete/:id", controllers.DeleteWeight)

        authed.GET("/categories/:name", controllers.CategoryDetails)
    }

    return r
}
