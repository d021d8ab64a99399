package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Evaluation represents a scored review of a project by one evaluator.
// Hard-deleted: the (project, evaluator) unique index must not be held
// hostage by soft-deleted rows, and evaluation counts drive the lock state.
type Evaluation struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid"`
	Score       float64   `json:"score" gorm:"type:decimal(4,1);not null"`
	Opinion     string    `json:"opinion" gorm:"not null"`
	EvaluatedAt time.Time `json:"evaluatedAt" gorm:"not null"`
	ProjectID   string    `json:"projectId" gorm:"type:uuid;not null;uniqueIndex:idx_project_evaluator"`
	EvaluatorID string    `json:"evaluatorId" gorm:"type:uuid;not null;uniqueIndex:idx_project_evaluator"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations
	Project   Project `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
	Evaluator User    `json:"evaluator,omitempty" gorm:"foreignKey:EvaluatorID"`
}

func (e *Evaluation) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// ScoreTenths returns the score as integer tenths for decimal-safe summing.
func (e *Evaluation) ScoreTenths() int64 {
	return int64(e.Score*10 + 0.5)
}
