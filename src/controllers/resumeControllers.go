package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/bakrinola/portfolio-backend/src/models"
	"github.com/bakrinola/portfolio-backend/src/services"
	"github.com/bakrinola/portfolio-backend/src/store"
)

const maxPDFSize = 10 << 20 // 10MB

type ResumeController struct {
	service *services.ResumeService
	blobs   *store.BlobStore
}

func NewResumeController(service *services.ResumeService, blobs *store.BlobStore) *ResumeController {
	return &ResumeController{service: service, blobs: blobs}
}

func (rc *ResumeController) GetResume(c *gin.Context) {
	resume, err := rc.service.GetResume()
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to fetch resume"})
		return
	}
	c.JSON(200, resume)
}

func (rc *ResumeController) UpdateResume(c *gin.Context) {
	var resume models.ResumeModel
	if err := c.ShouldBindJSON(&resume); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	updated, err := rc.service.ReplaceResume(&resume)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to update resume"})
		return
	}
	c.JSON(200, gin.H{"message": "Resume updated", "resume": updated})
}

func (rc *ResumeController) UploadPDF(c *gin.Context) {
	header, err := c.FormFile("pdf")
	if err != nil {
		c.JSON(400, gin.H{"error": "No file uploaded"})
		return
	}

	if header.Size > maxPDFSize {
		c.JSON(400, gin.H{"error": "File size exceeds 10MB limit"})
		return
	}
	if header.Header.Get("Content-Type") != "application/pdf" {
		c.JSON(400, gin.H{"error": "Only PDF files are allowed"})
		return
	}

	ref, err := rc.blobs.SaveUpload("pdf", header)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to upload resume PDF"})
		return
	}

	if err := rc.service.SetPDF(ref); err != nil {
		c.JSON(500, gin.H{"error": "Failed to upload resume PDF"})
		return
	}

	c.JSON(200, gin.H{"message": "Resume PDF uploaded successfully", "cvFile": ref})
}

func (rc *ResumeController) DeletePDF(c *gin.Context) {
	if err := rc.service.ClearPDF(); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(404, gin.H{"error": "No PDF file to delete"})
			return
		}
		c.JSON(500, gin.H{"error": "Failed to delete resume PDF"})
		return
	}
	c.JSON(200, gin.H{"message": "Resume PDF deleted successfully"})
}

func (rc *ResumeController) DownloadPDF(c *gin.Context) {
	path, err := rc.service.PDFPath()
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(404, gin.H{"error": "No resume PDF available"})
			return
		}
		c.JSON(500, gin.H{"error": "Failed to download resume"})
		return
	}
	c.FileAttachment(path, "resume.pdf")
}
