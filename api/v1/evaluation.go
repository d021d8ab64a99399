package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/innovatehub-portal/dto"
	"github.com/innovatehub-portal/services"
)

// EvaluationController handles evaluation API endpoints
type EvaluationController struct {
	evaluationService *services.EvaluationService
}

// NewEvaluationController creates a new evaluation controller
func NewEvaluationController(evaluationService *services.EvaluationService) *EvaluationController {
	return &EvaluationController{evaluationService: evaluationService}
}

// SubmitEvaluation records an evaluation by the authenticated evaluator
func (ec *EvaluationController) SubmitEvaluation(c *gin.Context) {
	userID, _, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req dto.SubmitEvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	response, err := ec.evaluationService.Submit(userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   response,
	})
}

// ListEvaluations returns all evaluations
func (ec *EvaluationController) ListEvaluations(c *gin.Context) {
	evaluations, err := ec.evaluationService.List()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   evaluations,
	})
}

// ListMyEvaluations returns the authenticated evaluator's own evaluations
func (ec *EvaluationController) ListMyEvaluations(c *gin.Context) {
	userID, _, ok := callerIdentity(c)
	if !ok {
		return
	}

	evaluations, err := ec.evaluationService.ListByEvaluator(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   evaluations,
	})
}

// GetEvaluation returns an evaluation by ID
func (ec *EvaluationController) GetEvaluation(c *gin.Context) {
	evaluation, err := ec.evaluationService.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   evaluation,
	})
}

// UpdateEvaluation modifies an evaluation, re-validating score and opinion
func (ec *EvaluationController) UpdateEvaluation(c *gin.Context) {
	var req dto.UpdateEvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	evaluation, err := ec.evaluationService.Update(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   evaluation,
	})
}

// DeleteEvaluation removes an evaluation
func (ec *EvaluationController) DeleteEvaluation(c *gin.Context) {
	if err := ec.evaluationService.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Evaluation deleted",
	})
}
