package dto

import "github.com/innovatehub-portal/models"

// CreateAwardRequest represents the payload to create an award
type CreateAwardRequest struct {
	Name        string                 `json:"name" binding:"required"`
	Description string                 `json:"description" binding:"required"`
	Year        int                    `json:"year" binding:"required"`
	Schedule    []models.SchedulePhase `json:"schedule" binding:"required"`
}

// UpdateAwardRequest represents the payload to update an award
type UpdateAwardRequest struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Year        int                    `json:"year"`
	Schedule    []models.SchedulePhase `json:"schedule"`
}
