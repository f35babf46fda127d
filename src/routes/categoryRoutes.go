package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/bakrinola/portfolio-backend/src/controllers"
	"github.com/bakrinola/portfolio-backend/src/middleware"
	"github.com/bakrinola/portfolio-backend/src/services"
)

func SetupCategoryRoutes(router *gin.Engine, service *services.CategoryService) {
	controller := controllers.NewCategoryController(service)

	// Public routes
	public := router.Group("/api/categories")
	{
		public.GET("", controller.GetAllCategories)
		public.GET("/service/:serviceId", controller.GetCategoriesByService)
	}

	// Protected routes
	admin := router.Group("/api/admin/categories")
	admin.Use(middleware.AuthMiddleware())
	{
		admin.GET("", controller.GetAllCategories)
		admin.GET("/service/:serviceId", controller.GetCategoriesByService)
		admin.POST("", controller.CreateCategory)
		admin.PUT("/:id", controller.UpdateCategory)
		admin.DELETE("/:id", controller.DeleteCategory)
	}
}
