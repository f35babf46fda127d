package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/bakrinola/portfolio-backend/src/controllers"
	"github.com/bakrinola/portfolio-backend/src/middleware"
	"github.com/bakrinola/portfolio-backend/src/services"
)

// SetupAdminRoutes registers login and the dashboard; entity-specific admin
// routes live with their entity route files.
func SetupAdminRoutes(router *gin.Engine, auth *services.AuthService, dashboard *services.DashboardService) {
	authController := controllers.NewAuthController(auth)
	dashboardController := controllers.NewDashboardController(dashboard)

	// Public routes
	router.POST("/api/admin/login", authController.Login)

	// Protected routes
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware())
	{
		admin.GET("/dashboard", dashboardController.GetStats)
	}
}
