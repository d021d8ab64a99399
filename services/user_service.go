package services

import (
	"errors"

	"github.com/innovatehub-portal/apperrors"
	"github.com/innovatehub-portal/dto"
	"github.com/innovatehub-portal/models"
	"github.com/innovatehub-portal/repositories"
	"github.com/innovatehub-portal/utils"
	"gorm.io/gorm"
)

// UserService handles business logic for user profiles
type UserService struct {
	userRepo *repositories.UserRepository
}

// NewUserService creates a new user service instance
func NewUserService(db *gorm.DB) *UserService {
	return &UserService{userRepo: repositories.NewUserRepository(db)}
}

// Get retrieves a user by ID
func (s *UserService) Get(id string) (models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, apperrors.NewNotFound("user")
		}
		return models.User{}, apperrors.NewInternal("loading user", err)
	}
	return user, nil
}

// ListAuthors retrieves all users with the author role
func (s *UserService) ListAuthors() ([]models.User, error) {
	users, err := s.userRepo.FindAllByRole(models.RoleAuthor)
	if err != nil {
		return nil, apperrors.NewInternal("listing authors", err)
	}
	return users, nil
}

// ListEvaluators retrieves all users with the evaluator role
func (s *UserService) ListEvaluators() ([]models.User, error) {
	users, err := s.userRepo.FindAllByRole(models.RoleEvaluator)
	if err != nil {
		return nil, apperrors.NewInternal("listing evaluators", err)
	}
	return users, nil
}

// Update modifies a profile. Only the user themselves or an admin may edit.
func (s *UserService) Update(callerID string, callerRole models.Role, id string, req dto.UpdateUserRequest) (models.User, error) {
	if callerID != id && callerRole != models.RoleAdmin {
		return models.User{}, apperrors.New(apperrors.KindForbidden, "cannot edit another user's profile")
	}

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, apperrors.NewNotFound("user")
		}
		return models.User{}, apperrors.NewInternal("loading user", err)
	}

	if req.Email != nil && *req.Email != user.Email {
		if taken, err := s.userRepo.ExistsByEmail(*req.Email, id); err != nil {
			return models.User{}, apperrors.NewInternal("checking email", err)
		} else if taken {
			return models.User{}, apperrors.New(apperrors.KindConflict, "email already registered")
		}
		user.Email = *req.Email
	}
	if req.CPF != nil && *req.CPF != user.CPF {
		if taken, err := s.userRepo.ExistsByCPF(*req.CPF, id); err != nil {
			return models.User{}, apperrors.NewInternal("checking cpf", err)
		} else if taken {
			return models.User{}, apperrors.New(apperrors.KindConflict, "cpf already registered")
		}
		user.CPF = *req.CPF
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.BirthDate != nil {
		user.BirthDate = *req.BirthDate
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Country != nil {
		user.Country = *req.Country
	}
	if req.City != nil {
		user.City = *req.City
	}
	if req.State != nil {
		user.State = *req.State
	}
	if req.Street != nil {
		user.Street = *req.Street
	}
	if req.Avenue != nil {
		user.Avenue = *req.Avenue
	}
	if req.Lot != nil {
		user.Lot = *req.Lot
	}
	if req.Number != nil {
		user.Number = *req.Number
	}
	if req.Specialty != nil {
		user.Specialty = *req.Specialty
	}
	if user.Role == models.RoleEvaluator && user.Specialty == "" {
		return models.User{}, apperrors.NewValidation("specialty is required for evaluators")
	}

	if req.Password != nil {
		hashed, err := utils.HashPassword(*req.Password)
		if err != nil {
			return models.User{}, apperrors.NewInternal("hashing password", err)
		}
		user.Password = hashed
	}

	if err := s.userRepo.Update(user); err != nil {
		return models.User{}, apperrors.NewInternal("updating user", err)
	}
	return user, nil
}

// Delete removes a user. Authorship associations are cleaned up;
// evaluations written by the user are left in place.
func (s *UserService) Delete(id string) error {
	if _, err := s.userRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("user")
		}
		return apperrors.NewInternal("loading user", err)
	}
	if err := s.userRepo.Delete(id); err != nil {
		return apperrors.NewInternal("deleting user", err)
	}
	return nil
}
