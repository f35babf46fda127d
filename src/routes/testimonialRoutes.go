package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/bakrinola/portfolio-backend/src/controllers"
	"github.com/bakrinola/portfolio-backend/src/services"
)

func SetupTestimonialRoutes(router *gin.Engine, service *services.TestimonialService) {
	controller := controllers.NewTestimonialController(service)

	// Public routes
	router.GET("/api/testimonials", controller.GetAllTestimonials)
}
