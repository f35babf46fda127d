package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/bakrinola/portfolio-backend/src/models"
	"github.com/bakrinola/portfolio-backend/src/services"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	token, err := ac.service.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(401, gin.H{"error": "Invalid credentials"})
			return
		}
		c.JSON(500, gin.H{"error": "Login failed"})
		return
	}

	c.JSON(200, models.LoginResponse{Token: token, Message: "Login successful"})
}
