package controllers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bakrinola/portfolio-backend/src/logger"
	"github.com/bakrinola/portfolio-backend/src/models"
	"github.com/bakrinola/portfolio-backend/src/services"
	"github.com/bakrinola/portfolio-backend/src/store"
)

type ContactController struct {
	service *services.ContactService
	export  *services.ExportService
	email   *services.EmailService
	log     *logger.Logger
}

func NewContactController(service *services.ContactService, export *services.ExportService, email *services.EmailService, log *logger.Logger) *ContactController {
	return &ContactController{service: service, export: export, email: email, log: log}
}

// SubmitContact stores the submission and fires the admin notification in
// the background. The notifier outcome never affects the response.
func (cc *ContactController) SubmitContact(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Subject) == "" || strings.TrimSpace(req.Message) == "" {
		c.JSON(400, gin.H{"error": "Missing required fields"})
		return
	}

	contact, err := cc.service.CreateContact(&req)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to submit contact form"})
		return
	}

	go func(contact models.ContactModel) {
		if err := cc.email.SendContactNotification(&contact); err != nil {
			if errors.Is(err, services.ErrEmailDisabled) {
				cc.log.Warn().Msg("email service not configured, skipping notification")
				return
			}
			cc.log.Error().Err(err).Int("contactId", contact.ID).Msg("email notification failed")
		}
	}(*contact)

	c.JSON(200, gin.H{"message": "Contact form submitted successfully", "contact": contact})
}

func (cc *ContactController) GetAllContacts(c *gin.Context) {
	contacts, err := cc.service.GetAllContacts()
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to fetch contacts"})
		return
	}
	c.JSON(200, contacts)
}

// SetRead toggles the read flag when the body omits it, sets it otherwise.
func (cc *ContactController) SetRead(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}

	var body struct {
		Read *bool `json:"read"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	contact, err := cc.service.SetRead(id, body.Read)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(404, gin.H{"error": "Contact not found"})
			return
		}
		c.JSON(500, gin.H{"error": "Failed to update contact"})
		return
	}
	c.JSON(200, gin.H{"message": "Contact updated", "contact": contact})
}

func (cc *ContactController) ExportContacts(c *gin.Context) {
	data, err := cc.export.ExportContacts()
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to export contacts"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="contacts.xlsx"`)
	c.Data(200, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
