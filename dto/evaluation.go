package dto

import (
	"time"

	"github.com/innovatehub-portal/models"
)

// SubmitEvaluationRequest represents the payload to record an evaluation.
// The evaluator is the authenticated caller, never part of the payload.
type SubmitEvaluationRequest struct {
	ProjectID   string     `json:"projectId" binding:"required"`
	Score       *float64   `json:"score" binding:"required"`
	Opinion     string     `json:"opinion" binding:"required"`
	EvaluatedAt *time.Time `json:"evaluatedAt"`
}

// UpdateEvaluationRequest represents the payload to update an evaluation
type UpdateEvaluationRequest struct {
	Score       *float64   `json:"score"`
	Opinion     *string    `json:"opinion"`
	EvaluatedAt *time.Time `json:"evaluatedAt"`
	ProjectID   *string    `json:"projectId"`
	EvaluatorID *string    `json:"evaluatorId"`
}

// EvaluationResponse pairs the accepted evaluation with the refreshed project
type EvaluationResponse struct {
	Evaluation models.Evaluation `json:"evaluation"`
	Project    models.Project    `json:"project"`
}
