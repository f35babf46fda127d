package controllers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bakrinola/portfolio-backend/src/models"
	"github.com/bakrinola/portfolio-backend/src/services"
	"github.com/bakrinola/portfolio-backend/src/store"
)

const (
	maxImageFiles = 10
	maxImageSize  = 10 << 20 // 10MB per file
)

type PortfolioController struct {
	service *services.PortfolioService
	blobs   *store.BlobStore
}

func NewPortfolioController(service *services.PortfolioService, blobs *store.BlobStore) *PortfolioController {
	return &PortfolioController{service: service, blobs: blobs}
}

func (pc *PortfolioController) GetAllItems(c *gin.Context) {
	items, err := pc.service.GetAllItems()
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to fetch portfolio"})
		return
	}
	c.JSON(200, items)
}

func (pc *PortfolioController) GetItemByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}

	item, err := pc.service.GetItemByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(404, gin.H{"error": "Portfolio item not found"})
			return
		}
		c.JSON(500, gin.H{"error": "Failed to fetch portfolio item"})
		return
	}
	c.JSON(200, item)
}

func (pc *PortfolioController) GetItemsByService(c *gin.Context) {
	serviceID, err := strconv.Atoi(c.Param("serviceId"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid service ID format"})
		return
	}

	items, err := pc.service.GetItemsByService(serviceID)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to fetch portfolio"})
		return
	}
	c.JSON(200, items)
}

func (pc *PortfolioController) GetItemsByServiceAndCategory(c *gin.Context) {
	serviceID, err := strconv.Atoi(c.Param("serviceId"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid service ID format"})
		return
	}
	categoryID, err := strconv.Atoi(c.Param("categoryId"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid category ID format"})
		return
	}

	items, err := pc.service.GetItemsByServiceAndCategory(serviceID, categoryID)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to fetch portfolio"})
		return
	}
	c.JSON(200, items)
}

func (pc *PortfolioController) CreateItem(c *gin.Context) {
	input, err := pc.parseInput(c)
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	item, err := pc.service.CreateItem(input)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to create portfolio item"})
		return
	}
	c.JSON(200, gin.H{"message": "Portfolio item created", "item": item})
}

func (pc *PortfolioController) UpdateItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}

	input, err := pc.parseInput(c)
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	item, err := pc.service.UpdateItem(id, input)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(404, gin.H{"error": "Portfolio item not found"})
			return
		}
		c.JSON(500, gin.H{"error": "Failed to update portfolio item"})
		return
	}
	c.JSON(200, gin.H{"message": "Portfolio item updated", "item": item})
}

func (pc *PortfolioController) DeleteItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := pc.service.DeleteItem(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(404, gin.H{"error": "Portfolio item not found"})
			return
		}
		c.JSON(500, gin.H{"error": "Failed to delete portfolio item"})
		return
	}
	c.JSON(200, gin.H{"message": "Portfolio item deleted"})
}

// parseInput coerces the multipart form into a typed input: strings stay
// pointers so absent fields are distinguishable from empty ones, list fields
// are normalized, uploaded files are written to the blob store up front.
func (pc *PortfolioController) parseInput(c *gin.Context) (*models.PortfolioInput, error) {
	input := &models.PortfolioInput{}

	for key, dst := range map[string]**string{
		"title":           &input.Title,
		"description":     &input.Description,
		"fullDescription": &input.FullDescription,
		"client":          &input.Client,
		"year":            &input.Year,
	} {
		if v, ok := c.GetPostForm(key); ok {
			value := v
			*dst = &value
		}
	}

	for key, dst := range map[string]**int{
		"serviceId":  &input.ServiceID,
		"categoryId": &input.CategoryID,
	} {
		if v, ok := c.GetPostForm(key); ok && v != "" {
			parsed, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("invalid %s: %q", key, v)
			}
			*dst = &parsed
		}
	}

	if v, ok := c.GetPostForm("featured"); ok {
		featured := v == "true" || v == "1"
		input.Featured = &featured
	}

	for key, dst := range map[string]*[]string{
		"tags":  &input.Tags,
		"tools": &input.Tools,
	} {
		if v, ok := c.GetPostForm(key); ok {
			list, err := services.ParseStringList(v)
			if err != nil {
				return nil, err
			}
			*dst = list
		}
	}

	input.CoverUpload = c.PostForm("coverImageUpload") == "true"
	if v, ok := c.GetPostForm("existingCoverImage"); ok {
		input.ExistingCover = &v
	}
	if v, ok := c.GetPostForm("existingGalleryImages"); ok {
		list, err := services.ParseStringList(v)
		if err != nil {
			return nil, err
		}
		input.ExistingGallery = list
	}

	form, err := c.MultipartForm()
	if err != nil {
		// A plain form body without files is still a valid request.
		return input, nil
	}

	files := form.File["images"]
	if len(files) > maxImageFiles {
		return nil, fmt.Errorf("too many files: at most %d images allowed", maxImageFiles)
	}
	for _, header := range files {
		if header.Size > maxImageSize {
			return nil, fmt.Errorf("file %s exceeds the 10MB limit", header.Filename)
		}
	}
	for _, header := range files {
		ref, err := pc.blobs.SaveUpload("images", header)
		if err != nil {
			return nil, err
		}
		input.UploadedFiles = append(input.UploadedFiles, ref)
	}

	return input, nil
}
