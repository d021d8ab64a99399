package repositories

import (
	"github.com/innovatehub-portal/models"
	"gorm.io/gorm"
)

// AwardRepository handles database operations for awards
type AwardRepository struct {
	db *gorm.DB
}

// NewAwardRepository creates a new award repository instance
func NewAwardRepository(db *gorm.DB) *AwardRepository {
	return &AwardRepository{db: db}
}

// FindAll retrieves all awards
func (r *AwardRepository) FindAll() ([]models.Award, error) {
	var awards []models.Award
	result := r.db.Find(&awards)
	return awards, result.Error
}

// FindByID retrieves an award by its ID
func (r *AwardRepository) FindByID(id string) (models.Award, error) {
	var award models.Award
	result := r.db.First(&award, "id = ?", id)
	return award, result.Error
}

// Create inserts a new award into the database
func (r *AwardRepository) Create(award models.Award) (models.Award, error) {
	result := r.db.Create(&award)
	return award, result.Error
}

// Update modifies an existing award
func (r *AwardRepository) Update(award models.Award) error {
	result := r.db.Save(&award)
	return result.Error
}

// Delete removes an award from the database (soft delete)
func (r *AwardRepository) Delete(id string) error {
	result := r.db.Delete(&models.Award{}, "id = ?", id)
	return result.Error
}

// CountProjects counts projects associated with an award
func (r *AwardRepository) CountProjects(id string) (int64, error) {
	var count int64
	result := r.db.Model(&models.Project{}).Where("award_id = ?", id).Count(&count)
	return count, result.Error
}
