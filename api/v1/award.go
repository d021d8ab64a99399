package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/innovatehub-portal/dto"
	"github.com/innovatehub-portal/services"
)

// AwardController handles award API endpoints
type AwardController struct {
	awardService *services.AwardService
}

// NewAwardController creates a new award controller
func NewAwardController(awardService *services.AwardService) *AwardController {
	return &AwardController{awardService: awardService}
}

// ListActive returns awards currently inside at least one schedule phase.
// Public: the browsable listing only shows open cycles.
func (ac *AwardController) ListActive(c *gin.Context) {
	awards, err := ac.awardService.ListActive(time.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   awards,
	})
}

// GetAward returns an award by ID regardless of schedule activity
func (ac *AwardController) GetAward(c *gin.Context) {
	award, err := ac.awardService.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   award,
	})
}

// CreateAward creates an award owned by the calling admin
func (ac *AwardController) CreateAward(c *gin.Context) {
	userID, _, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req dto.CreateAwardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	award, err := ac.awardService.Create(userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   award,
	})
}

// UpdateAward updates an existing award
func (ac *AwardController) UpdateAward(c *gin.Context) {
	var req dto.UpdateAwardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	award, err := ac.awardService.Update(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   award,
	})
}

// DeleteAward deletes an award with no associated projects
func (ac *AwardController) DeleteAward(c *gin.Context) {
	if err := ac.awardService.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Award deleted",
	})
}
