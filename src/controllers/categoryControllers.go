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

type CategoryController struct {
	service *services.CategoryService
}

func NewCategoryController(service *services.CategoryService) *CategoryController {
	return &CategoryController{service: service}
}

func (cc *CategoryController) GetAllCategories(c *gin.Context) {
	list, err := cc.service.GetAllCategories()
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to fetch categories"})
		return
	}
	c.JSON(200, list)
}

func (cc *CategoryController) GetCategoriesByService(c *gin.Context) {
	serviceID, err := strconv.Atoi(c.Param("serviceId"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid service ID format"})
		return
	}

	list, err := cc.service.GetCategoriesByService(serviceID)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to fetch categories"})
		return
	}
	c.JSON(200, list)
}

func (cc *CategoryController) CreateCategory(c *gin.Context) {
	var input models.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if strings.TrimSpace(input.Name) == "" {
		c.JSON(400, gin.H{"error": "Name is required"})
		return
	}

	category, err := cc.service.CreateCategory(&input)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to create category"})
		return
	}
	c.JSON(200, gin.H{"message": "Category created", "category": category})
}

func (cc *CategoryController) UpdateCategory(c *gin.Context) {
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

	category, err := cc.service.UpdateCategory(id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(404, gin.H{"error": "Category not found"})
			return
		}
		c.JSON(500, gin.H{"error": "Failed to update category"})
		return
	}
	c.JSON(200, gin.H{"message": "Category updated", "category": category})
}

func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := cc.service.DeleteCategory(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(404, gin.H{"error": "Category not found"})
			return
		}
		c.JSON(500, gin.H{"error": "Failed to delete category"})
		return
	}
	c.JSON(200, gin.H{"message": "Category deleted"})
}
