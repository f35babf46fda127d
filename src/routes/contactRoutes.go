package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/bakrinola/portfolio-backend/src/controllers"
	"github.com/bakrinola/portfolio-backend/src/logger"
	"github.com/bakrinola/portfolio-backend/src/middleware"
	"github.com/bakrinola/portfolio-backend/src/services"
)

func SetupContactRoutes(router *gin.Engine, service *services.ContactService, export *services.ExportService, email *services.EmailService, log *logger.Logger) {
	controller := controllers.NewContactController(service, export, email, log)

	// Public routes
	router.POST("/api/contact", controller.SubmitContact)

	// Protected routes
	admin := router.Group("/api/admin/contact")
	admin.Use(middleware.AuthMiddleware())
	{
		admin.GET("", controller.GetAllContacts)
		admin.GET("/export", controller.ExportContacts)
		admin.PUT("/:id/read", controller.SetRead)
	}
}
