package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/bakrinola/portfolio-backend/src/controllers"
	"github.com/bakrinola/portfolio-backend/src/middleware"
	"github.com/bakrinola/portfolio-backend/src/services"
	"github.com/bakrinola/portfolio-backend/src/store"
)

func SetupPortfolioRoutes(router *gin.Engine, service *services.PortfolioService, blobs *store.BlobStore) {
	controller := controllers.NewPortfolioController(service, blobs)

	// Public routes
	public := router.Group("/api/portfolio")
	{
		public.GET("", controller.GetAllItems)
		public.GET("/:id", controller.GetItemByID)
		public.GET("/service/:serviceId", controller.GetItemsByService)
		public.GET("/service/:serviceId/category/:categoryId", controller.GetItemsByServiceAndCategory)
	}

	// Protected routes
	admin := router.Group("/api/admin/portfolio")
	admin.Use(middleware.AuthMiddleware())
	{
		admin.GET("", controller.GetAllItems)
		admin.POST("", controller.CreateItem)
		admin.PUT("/:id", controller.UpdateItem)
		admin.DELETE("/:id", controller.DeleteItem)
	}
}
