package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/bakrinola/portfolio-backend/src/services"
)

type TestimonialController struct {
	service *services.TestimonialService
}

func NewTestimonialController(service *services.TestimonialService) *TestimonialController {
	return &TestimonialController{service: service}
}

func (tc *TestimonialController) GetAllTestimonials(c *gin.Context) {
	testimonials, err := tc.service.GetAllTestimonials()
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to fetch testimonials"})
		return
	}
	c.JSON(200, testimonials)
}
