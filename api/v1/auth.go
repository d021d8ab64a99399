package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/innovatehub-portal/dto"
	"github.com/innovatehub-portal/services"
)

// AuthController handles authentication API endpoints
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new auth controller
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Register handles self-registration of authors and evaluators
func (ac *AuthController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	user, err := ac.authService.Register(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   user,
	})
}

// Login authenticates a user and returns a token
func (ac *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	response, err := ac.authService.Login(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   response,
	})
}

// GetCurrentUser returns the authenticated caller's profile
func (ac *AuthController) GetCurrentUser(c *gin.Context) {
	userID, _, ok := callerIdentity(c)
	if !ok {
		return
	}

	user, err := ac.authService.GetUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	user.Password = ""
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   user,
	})
}
