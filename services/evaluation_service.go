package services

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/innovatehub-portal/apperrors"
	"github.com/innovatehub-portal/dto"
	"github.com/innovatehub-portal/models"
	"github.com/innovatehub-portal/repositories"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EvaluationService runs the evaluation admission pipeline and the
// count-then-flip transition on the owning project.
type EvaluationService struct {
	db             *gorm.DB
	evaluationRepo *repositories.EvaluationRepository
	projectRepo    *repositories.ProjectRepository
}

// NewEvaluationService creates a new evaluation service instance
func NewEvaluationService(db *gorm.DB) *EvaluationService {
	return &EvaluationService{
		db:             db,
		evaluationRepo: repositories.NewEvaluationRepository(db),
		projectRepo:    repositories.NewProjectRepository(db),
	}
}

// validateScore checks the score is a finite number in [0, 10] and rounds it
// to one decimal place, the stored precision.
func validateScore(score float64) (float64, error) {
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return 0, apperrors.New(apperrors.KindInvalidScore, "score must be a finite number")
	}
	if score < 0 || score > 10 {
		return 0, apperrors.New(apperrors.KindInvalidScore, "score must be between 0 and 10")
	}
	return math.Round(score*10) / 10, nil
}

func validateOpinion(opinion string) (string, error) {
	trimmed := strings.TrimSpace(opinion)
	if trimmed == "" {
		return "", apperrors.New(apperrors.KindInvalidOpinion, "opinion must not be empty")
	}
	return trimmed, nil
}

// Submit records an evaluation for the authenticated evaluator. Admission
// checks run in a fixed order; the insert, the recount and the evaluated
// flip happen in one transaction so concurrent submissions for the same
// project serialize instead of racing the count.
func (s *EvaluationService) Submit(evaluatorID string, req dto.SubmitEvaluationRequest) (*dto.EvaluationResponse, error) {
	var saved models.Evaluation

	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Lock the project row: the count-gate-insert-flip sequence below must
		// serialize per project, not race under READ COMMITTED.
		var project models.Project
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("Authors").First(&project, "id = ?", req.ProjectID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("project")
			}
			return apperrors.NewInternal("loading project", err)
		}

		var evaluator models.User
		if err := tx.First(&evaluator, "id = ?", evaluatorID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.New(apperrors.KindInvalidEvaluator, "evaluator not found")
			}
			return apperrors.NewInternal("loading evaluator", err)
		}
		if evaluator.Role != models.RoleEvaluator {
			return apperrors.New(apperrors.KindInvalidEvaluator, "user is not an evaluator")
		}

		if project.HasAuthor(evaluator.ID) {
			return apperrors.New(apperrors.KindSelfEvaluation, "evaluator cannot evaluate their own project")
		}

		var existing int64
		if err := tx.Model(&models.Evaluation{}).
			Where("project_id = ? AND evaluator_id = ?", project.ID, evaluator.ID).
			Count(&existing).Error; err != nil {
			return apperrors.NewInternal("checking duplicate evaluation", err)
		}
		if existing > 0 {
			return apperrors.New(apperrors.KindDuplicateEvaluation, "project already evaluated by this evaluator")
		}

		score, err := validateScore(*req.Score)
		if err != nil {
			return err
		}
		opinion, err := validateOpinion(req.Opinion)
		if err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.Evaluation{}).
			Where("project_id = ?", project.ID).
			Count(&count).Error; err != nil {
			return apperrors.NewInternal("counting evaluations", err)
		}
		if count >= models.EvaluationThreshold {
			return apperrors.New(apperrors.KindProjectFullyEvaluated, "project already received all evaluations")
		}

		when := time.Now()
		if req.EvaluatedAt != nil {
			when = *req.EvaluatedAt
		}

		saved = models.Evaluation{
			Score:       score,
			Opinion:     opinion,
			EvaluatedAt: when,
			ProjectID:   project.ID,
			EvaluatorID: evaluator.ID,
		}
		if err := tx.Create(&saved).Error; err != nil {
			return apperrors.NewInternal("saving evaluation", err)
		}

		// Recount after insert; flip evaluated inside the same transaction.
		if err := tx.Model(&models.Evaluation{}).
			Where("project_id = ?", project.ID).
			Count(&count).Error; err != nil {
			return apperrors.NewInternal("recounting evaluations", err)
		}
		if count >= models.EvaluationThreshold && !project.Evaluated {
			if err := tx.Model(&models.Project{}).
				Where("id = ?", project.ID).
				Update("evaluated", true).Error; err != nil {
				return apperrors.NewInternal("locking project", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	project, err := s.projectRepo.FindByID(req.ProjectID)
	if err != nil {
		return nil, apperrors.NewInternal("reloading project", err)
	}
	evaluator, err := s.loadEvaluator(saved.EvaluatorID)
	if err != nil {
		return nil, apperrors.NewInternal("reloading evaluator", err)
	}
	saved.Evaluator = evaluator

	return &dto.EvaluationResponse{Evaluation: saved, Project: project}, nil
}

func (s *EvaluationService) loadEvaluator(id string) (models.User, error) {
	var user models.User
	err := s.db.First(&user, "id = ?", id).Error
	return user, err
}

// Get retrieves an evaluation by ID
func (s *EvaluationService) Get(id string) (models.Evaluation, error) {
	evaluation, err := s.evaluationRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Evaluation{}, apperrors.NewNotFound("evaluation")
		}
		return models.Evaluation{}, apperrors.NewInternal("loading evaluation", err)
	}
	return evaluation, nil
}

// List retrieves all evaluations
func (s *EvaluationService) List() ([]models.Evaluation, error) {
	evaluations, err := s.evaluationRepo.FindAll()
	if err != nil {
		return nil, apperrors.NewInternal("listing evaluations", err)
	}
	return evaluations, nil
}

// ListByEvaluator retrieves the authenticated evaluator's own evaluations
func (s *EvaluationService) ListByEvaluator(evaluatorID string) ([]models.Evaluation, error) {
	evaluations, err := s.evaluationRepo.FindByEvaluatorID(evaluatorID)
	if err != nil {
		return nil, apperrors.NewInternal("listing evaluations", err)
	}
	return evaluations, nil
}

// Update re-validates only the score and opinion shape, not the full
// admission pipeline. Reassignment of project or evaluator is accepted
// as-is, matching the portal's update semantics.
func (s *EvaluationService) Update(id string, req dto.UpdateEvaluationRequest) (models.Evaluation, error) {
	evaluation, err := s.evaluationRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Evaluation{}, apperrors.NewNotFound("evaluation")
		}
		return models.Evaluation{}, apperrors.NewInternal("loading evaluation", err)
	}

	if req.Score != nil {
		score, err := validateScore(*req.Score)
		if err != nil {
			return models.Evaluation{}, err
		}
		evaluation.Score = score
	}
	if req.Opinion != nil {
		opinion, err := validateOpinion(*req.Opinion)
		if err != nil {
			return models.Evaluation{}, err
		}
		evaluation.Opinion = opinion
	}
	if req.EvaluatedAt != nil {
		evaluation.EvaluatedAt = *req.EvaluatedAt
	}
	if req.ProjectID != nil {
		evaluation.ProjectID = *req.ProjectID
	}
	if req.EvaluatorID != nil {
		evaluation.EvaluatorID = *req.EvaluatorID
	}

	evaluation.Project = models.Project{}
	evaluation.Evaluator = models.User{}
	if err := s.evaluationRepo.Update(evaluation); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.Evaluation{}, apperrors.New(apperrors.KindDuplicateEvaluation, "project already evaluated by this evaluator")
		}
		return models.Evaluation{}, apperrors.NewInternal("updating evaluation", err)
	}
	return evaluation, nil
}

// Delete removes an evaluation. No gating, matching the portal's delete
// semantics; the evaluated flag on the project is not rolled back.
func (s *EvaluationService) Delete(id string) error {
	if _, err := s.evaluationRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("evaluation")
		}
		return apperrors.NewInternal("loading evaluation", err)
	}
	if err := s.evaluationRepo.Delete(id); err != nil {
		return apperrors.NewInternal("deleting evaluation", err)
	}
	return nil
}
