package repositories

import (
	"github.com/innovatehub-portal/models"
	"gorm.io/gorm"
)

// EvaluationRepository handles database operations for evaluations
type EvaluationRepository struct {
	db *gorm.DB
}

// NewEvaluationRepository creates a new evaluation repository instance
func NewEvaluationRepository(db *gorm.DB) *EvaluationRepository {
	return &EvaluationRepository{db: db}
}

// FindAll retrieves all evaluations with project and evaluator loaded
func (r *EvaluationRepository) FindAll() ([]models.Evaluation, error) {
	var evaluations []models.Evaluation
	result := r.db.Preload("Project").Preload("Evaluator").Find(&evaluations)
	return evaluations, result.Error
}

// FindByID retrieves an evaluation by its ID
func (r *EvaluationRepository) FindByID(id string) (models.Evaluation, error) {
	var evaluation models.Evaluation
	result := r.db.Preload("Project").Preload("Evaluator").First(&evaluation, "id = ?", id)
	return evaluation, result.Error
}

// FindByEvaluatorID retrieves all evaluations written by one evaluator
func (r *EvaluationRepository) FindByEvaluatorID(evaluatorID string) ([]models.Evaluation, error) {
	var evaluations []models.Evaluation
	result := r.db.Preload("Project").Where("evaluator_id = ?", evaluatorID).Find(&evaluations)
	return evaluations, result.Error
}

// Update modifies an existing evaluation
func (r *EvaluationRepository) Update(evaluation models.Evaluation) error {
	result := r.db.Save(&evaluation)
	return result.Error
}

// Delete removes an evaluation from the database
func (r *EvaluationRepository) Delete(id string) error {
	result := r.db.Delete(&models.Evaluation{}, "id = ?", id)
	return result.Error
}
