package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/bakrinola/portfolio-backend/src/controllers"
	"github.com/bakrinola/portfolio-backend/src/middleware"
	"github.com/bakrinola/portfolio-backend/src/services"
)

func SetupServiceRoutes(router *gin.Engine, service *services.ServiceService) {
	controller := controllers.NewServiceController(service)

	// Public routes
	public := router.Group("/api/services")
	{
		public.GET("", controller.GetAllServices)
		public.GET("/:slug", controller.GetServiceBySlug)
	}

	// Protected routes
	admin := router.Group("/api/admin/services")
	admin.Use(middleware.AuthMiddleware())
	{
		admin.GET("", controller.GetAllServices)
		admin.POST("", controller.CreateService)
		admin.PUT("/:id", controller.UpdateService)
		admin.DELETE("/:id", controller.DeleteService)
	}
}
