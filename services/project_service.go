package services

import (
	"errors"
	"time"

	"github.com/innovatehub-portal/apperrors"
	"github.com/innovatehub-portal/dto"
	"github.com/innovatehub-portal/models"
	"github.com/innovatehub-portal/repositories"
	"gorm.io/gorm"
)

// ProjectService handles business logic for projects, including the
// editable/locked lifecycle.
type ProjectService struct {
	projectRepo *repositories.ProjectRepository
	awardRepo   *repositories.AwardRepository
	userRepo    *repositories.UserRepository
}

// NewProjectService creates a new project service instance
func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{
		projectRepo: repositories.NewProjectRepository(db),
		awardRepo:   repositories.NewAwardRepository(db),
		userRepo:    repositories.NewUserRepository(db),
	}
}

// resolveAuthors validates that every id maps to an existing user with the
// author role and returns the resolved set.
func (s *ProjectService) resolveAuthors(ids []string) ([]models.User, error) {
	unique := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}

	authors, err := s.userRepo.FindAuthorsByIDs(unique)
	if err != nil {
		return nil, apperrors.NewInternal("resolving authors", err)
	}
	if len(authors) != len(unique) {
		return nil, apperrors.New(apperrors.KindInvalidAuthors, "one or more authors not found or not author role")
	}
	return authors, nil
}

// Create submits a new project. Authors become the principal author
// themselves; admins submit on behalf of an explicit principal.
func (s *ProjectService) Create(callerID string, callerRole models.Role, req dto.CreateProjectRequest) (models.Project, error) {
	var principalID string
	switch callerRole {
	case models.RoleAuthor:
		principalID = callerID
	case models.RoleAdmin:
		if req.PrincipalAuthorID == "" {
			return models.Project{}, apperrors.NewValidation("principalAuthorId is required when an admin submits a project")
		}
		principalID = req.PrincipalAuthorID
	default:
		return models.Project{}, apperrors.New(apperrors.KindForbidden, "only authors can submit projects")
	}

	if _, err := s.awardRepo.FindByID(req.AwardID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Project{}, apperrors.NewNotFound("award")
		}
		return models.Project{}, apperrors.NewInternal("loading award", err)
	}

	// The principal author is always a member of the author set.
	authorIDs := append([]string{principalID}, req.AuthorIDs...)
	authors, err := s.resolveAuthors(authorIDs)
	if err != nil {
		return models.Project{}, err
	}

	project := models.Project{
		Title:             req.Title,
		ThematicArea:      req.ThematicArea,
		Abstract:          req.Abstract,
		SubmittedAt:       time.Now(),
		PrincipalAuthorID: principalID,
		AwardID:           req.AwardID,
	}

	created, err := s.projectRepo.Create(project, authors)
	if err != nil {
		return models.Project{}, apperrors.NewInternal("creating project", err)
	}
	return created, nil
}

// Get retrieves a project by ID with all relations loaded
func (s *ProjectService) Get(id string) (models.Project, error) {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Project{}, apperrors.NewNotFound("project")
		}
		return models.Project{}, apperrors.NewInternal("loading project", err)
	}
	return project, nil
}

// List retrieves all projects with the requested expansions
func (s *ProjectService) List(query dto.ProjectQuery) ([]models.Project, error) {
	projects, err := s.projectRepo.FindAll(query)
	if err != nil {
		return nil, apperrors.NewInternal("listing projects", err)
	}
	return projects, nil
}

// ListByEvaluated retrieves projects filtered on the evaluated flag
func (s *ProjectService) ListByEvaluated(evaluated bool) ([]models.Project, error) {
	projects, err := s.projectRepo.FindByEvaluated(evaluated)
	if err != nil {
		return nil, apperrors.NewInternal("listing projects", err)
	}
	return projects, nil
}

// Update applies a structural update. Locked projects reject any change;
// there is no way back from locked.
func (s *ProjectService) Update(id string, req dto.UpdateProjectRequest) (models.Project, error) {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Project{}, apperrors.NewNotFound("project")
		}
		return models.Project{}, apperrors.NewInternal("loading project", err)
	}

	if project.Evaluated {
		return models.Project{}, apperrors.New(apperrors.KindProjectLocked, "project is locked after evaluation")
	}

	if req.Title != "" {
		project.Title = req.Title
	}
	if req.ThematicArea != "" {
		project.ThematicArea = req.ThematicArea
	}
	if req.Abstract != "" {
		project.Abstract = req.Abstract
	}
	if req.AwardID != "" && req.AwardID != project.AwardID {
		if _, err := s.awardRepo.FindByID(req.AwardID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.Project{}, apperrors.NewNotFound("award")
			}
			return models.Project{}, apperrors.NewInternal("loading award", err)
		}
		project.AwardID = req.AwardID
	}

	authors := project.Authors
	if len(req.AuthorIDs) > 0 {
		ids := append([]string{project.PrincipalAuthorID}, req.AuthorIDs...)
		authors, err = s.resolveAuthors(ids)
		if err != nil {
			return models.Project{}, err
		}
	}

	project.Award = models.Award{}
	project.Evaluations = nil
	if err := s.projectRepo.Update(project, authors); err != nil {
		return models.Project{}, apperrors.NewInternal("updating project", err)
	}
	return s.Get(id)
}

// Delete removes a project. Blocked while any evaluation exists, even
// before the project locks.
func (s *ProjectService) Delete(id string) error {
	if _, err := s.projectRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("project")
		}
		return apperrors.NewInternal("loading project", err)
	}

	count, err := s.projectRepo.CountEvaluations(id)
	if err != nil {
		return apperrors.NewInternal("counting evaluations", err)
	}
	if count > 0 {
		return apperrors.New(apperrors.KindHasEvaluations, "project has evaluations and cannot be deleted")
	}

	if err := s.projectRepo.Delete(id); err != nil {
		return apperrors.NewInternal("deleting project", err)
	}
	return nil
}
