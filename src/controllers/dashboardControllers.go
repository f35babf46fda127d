package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/bakrinola/portfolio-backend/src/services"
)

type DashboardController struct {
	service *services.DashboardService
}

func NewDashboardController(service *services.DashboardService) *DashboardController {
	return &DashboardController{service: service}
}

func (dc *DashboardController) GetStats(c *gin.Context) {
	stats, err := dc.service.GetStats()
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to fetch dashboard stats"})
		return
	}
	c.JSON(200, stats)
}
