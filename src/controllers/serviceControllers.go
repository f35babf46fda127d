package controllers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bakrinola/portfolio-backend/src/models"
	"github.com/bakrinola/portfolio-backend/src/services"
	"github.com/bakrinola/portfolio-backend/src/store"
)

type ServiceController struct {
	service *services.ServiceService
}

func NewServiceController(service *services.ServiceService) *ServiceController {
	return &ServiceController{service: service}
}

func (sc *ServiceController) GetAllServices(c *gin.Context) {
	list, err := sc.service.GetAllServices()
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to fetch services"})
		return
	}
	c.JSON(200, list)
}

func (sc *ServiceController) GetServiceBySlug(c *gin.Context) {
	service, err := sc.service.GetServiceBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(404, gin.H{"error": "Service not found"})
			return
		}
		c.JSON(500, gin.H{"error": "Failed to fetch service"})
		return
	}
	c.JSON(200, service)
}

func (sc *ServiceController) CreateService(c *gin.Context) {
	var input models.ServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if strings.TrimSpace(input.Name) == "" {
		c.JSON(400, gin.H{"error": "Name is required"})
		return
	}

	service, err := sc.service.CreateService(&input)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to create service"})
		return
	}
	c.JSON(200, gin.H{"message": "Service created", "service": service})
}

func (sc *ServiceController) UpdateService(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}

	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	service, err := sc.service.UpdateService(id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(404, gin.H{"error": "Service not found"})
			return
		}
		c.JSON(500, gin.H{"error": "Failed to update service"})
		return
	}
	c.JSON(200, gin.H{"message": "Service updated", "service": service})
}

func (sc *ServiceController) DeleteService(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := sc.service.DeleteService(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(404, gin.H{"error": "Service not found"})
			return
		}
		c.JSON(500, gin.H{"error": "Failed to delete service"})
		return
	}
	c.JSON(200, gin.H{"message": "Service deleted"})
}
