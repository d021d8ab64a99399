package repositories

import (
	"github.com/innovatehub-portal/models"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByID retrieves a user by its ID
func (r *UserRepository) FindByID(id string) (models.User, error) {
	var user models.User
	result := r.db.First(&user, "id = ?", id)
	return user, result.Error
}

// FindByEmail retrieves a user by email
func (r *UserRepository) FindByEmail(email string) (models.User, error) {
	var user models.User
	result := r.db.First(&user, "email = ?", email)
	return user, result.Error
}

// FindAllByRole retrieves all users with the given role
func (r *UserRepository) FindAllByRole(role models.Role) ([]models.User, error) {
	var users []models.User
	result := r.db.Where("role = ?", role).Find(&users)
	return users, result.Error
}

// FindAuthorsByIDs retrieves the subset of the given ids that resolve to
// existing users with the author role
func (r *UserRepository) FindAuthorsByIDs(ids []string) ([]models.User, error) {
	var users []models.User
	result := r.db.Where("id IN ? AND role = ?", ids, models.RoleAuthor).Find(&users)
	return users, result.Error
}

// ExistsByEmail checks whether a user with the email exists, excluding the
// given user id (pass "" on creation)
func (r *UserRepository) ExistsByEmail(email, excludeID string) (bool, error) {
	var count int64
	q := r.db.Model(&models.User{}).Where("email = ?", email)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

// ExistsByCPF checks whether a user with the CPF exists, excluding the
// given user id (pass "" on creation)
func (r *UserRepository) ExistsByCPF(cpf, excludeID string) (bool, error) {
	var count int64
	q := r.db.Model(&models.User{}).Where("cpf = ?", cpf)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

// Create inserts a new user into the database
func (r *UserRepository) Create(user models.User) (models.User, error) {
	result := r.db.Create(&user)
	return user, result.Error
}

// Update modifies an existing user
func (r *UserRepository) Update(user models.User) error {
	result := r.db.Save(&user)
	return result.Error
}

// Delete removes a user and its authorship associations (soft delete).
// Evaluations written by the user are kept, matching the portal's policy.
func (r *UserRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM project_authors WHERE user_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.User{}, "id = ?", id)
		return result.Error
	})
}
