package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/bakrinola/portfolio-backend/src/controllers"
	"github.com/bakrinola/portfolio-backend/src/middleware"
	"github.com/bakrinola/portfolio-backend/src/services"
	"github.com/bakrinola/portfolio-backend/src/store"
)

func SetupResumeRoutes(router *gin.Engine, service *services.ResumeService, blobs *store.BlobStore) {
	controller := controllers.NewResumeController(service, blobs)

	// Public routes
	public := router.Group("/api/resume")
	{
		public.GET("", controller.GetResume)
		public.GET("/download", controller.DownloadPDF)
	}

	// Protected routes
	admin := router.Group("/api/admin/resume")
	admin.Use(middleware.AuthMiddleware())
	{
		admin.GET("", controller.GetResume)
		admin.PUT("", controller.UpdateResume)
		admin.POST("/upload-pdf", controller.UploadPDF)
		admin.DELETE("/pdf", controller.DeletePDF)
	}
}
