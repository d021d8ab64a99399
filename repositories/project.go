package repositories

import (
	"github.com/innovatehub-portal/dto"
	"github.com/innovatehub-portal/models"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// withExpansion applies typed relationship-expansion flags to a query
func withExpansion(q *gorm.DB, query dto.ProjectQuery) *gorm.DB {
	if query.WithAuthors {
		q = q.Preload("Authors")
	}
	if query.WithEvaluations {
		q = q.Preload("Evaluations").Preload("Evaluations.Evaluator")
	}
	return q
}

// FindAll retrieves all projects with the requested expansions
func (r *ProjectRepository) FindAll(query dto.ProjectQuery) ([]models.Project, error) {
	var projects []models.Project
	result := withExpansion(r.db.Preload("Award"), query).Find(&projects)
	return projects, result.Error
}

// FindByEvaluated retrieves projects filtered on the evaluated flag
func (r *ProjectRepository) FindByEvaluated(evaluated bool) ([]models.Project, error) {
	var projects []models.Project
	result := r.db.
		Preload("Award").
		Preload("Authors").
		Preload("Evaluations").
		Preload("Evaluations.Evaluator").
		Where("evaluated = ?", evaluated).
		Find(&projects)
	return projects, result.Error
}

// FindByID retrieves a project by its ID with all relations loaded
func (r *ProjectRepository) FindByID(id string) (models.Project, error) {
	var project models.Project
	result := r.db.
		Preload("Award").
		Preload("Authors").
		Preload("Evaluations").
		Preload("Evaluations.Evaluator").
		First(&project, "id = ?", id)
	return project, result.Error
}

// FindWithEvaluations retrieves all projects that have at least one
// evaluation, the ranking scope
func (r *ProjectRepository) FindWithEvaluations() ([]models.Project, error) {
	var projects []models.Project
	result := r.db.
		Preload("Award").
		Preload("Authors").
		Preload("Evaluations").
		Where("id IN (?)", r.db.Model(&models.Evaluation{}).Select("project_id")).
		Order("created_at asc").
		Find(&projects)
	return projects, result.Error
}

// Create inserts a new project and its author associations
func (r *ProjectRepository) Create(project models.Project, authors []models.User) (models.Project, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Authors").Create(&project).Error; err != nil {
			return err
		}
		return tx.Model(&project).Association("Authors").Replace(authors)
	})
	project.Authors = authors
	return project, err
}

// Update modifies a project's structural fields and replaces its author set
func (r *ProjectRepository) Update(project models.Project, authors []models.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Authors", "Evaluations", "Award").Save(&project).Error; err != nil {
			return err
		}
		return tx.Model(&project).Association("Authors").Replace(authors)
	})
}

// Delete removes a project and its author associations (soft delete)
func (r *ProjectRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM project_authors WHERE project_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Project{}, "id = ?", id)
		return result.Error
	})
}

// CountEvaluations counts evaluations recorded for a project
func (r *ProjectRepository) CountEvaluations(id string) (int64, error) {
	var count int64
	result := r.db.Model(&models.Evaluation{}).Where("project_id = ?", id).Count(&count)
	return count, result.Error
}

// SetWinners sets winner = true for exactly the given project ids
func (r *ProjectRepository) SetWinners(ids []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Project{}).Where("winner = ?", true).Update("winner", false).Error; err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		return tx.Model(&models.Project{}).Where("id IN ?", ids).Update("winner", true).Error
	})
}
