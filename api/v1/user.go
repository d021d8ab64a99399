package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/innovatehub-portal/dto"
	"github.com/innovatehub-portal/models"
	"github.com/innovatehub-portal/services"
)

// UserController handles user profile API endpoints
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new user controller
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{userService: userService}
}

// GetUser returns a user by ID
func (uc *UserController) GetUser(c *gin.Context) {
	user, err := uc.userService.Get(c.Param("id"))
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

// ListAuthors returns all author users
func (uc *UserController) ListAuthors(c *gin.Context) {
	users, err := uc.userService.ListAuthors()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   users,
	})
}

// ListEvaluators returns all evaluator users
func (uc *UserController) ListEvaluators(c *gin.Context) {
	users, err := uc.userService.ListEvaluators()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   users,
	})
}

// UpdateUser modifies a user profile (self or admin)
func (uc *UserController) UpdateUser(c *gin.Context) {
	userID, role, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	user, err := uc.userService.Update(userID, models.Role(role), c.Param("id"), req)
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

// DeleteUser removes a user (admin only, enforced by middleware)
func (uc *UserController) DeleteUser(c *gin.Context) {
	if err := uc.userService.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User deleted",
	})
}
