package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/innovatehub-portal/apperrors"
	"github.com/innovatehub-portal/dto"
	"github.com/innovatehub-portal/models"
	"github.com/innovatehub-portal/repositories"
	"gorm.io/gorm"
)

// AwardService handles business logic for awards and their schedules
type AwardService struct {
	awardRepo *repositories.AwardRepository
}

// NewAwardService creates a new award service instance
func NewAwardService(db *gorm.DB) *AwardService {
	return &AwardService{awardRepo: repositories.NewAwardRepository(db)}
}

const scheduleDateLayout = "2006-01-02"

// validateSchedule checks every phase has a label and parseable dates with
// start <= end. Overlapping phases are allowed.
func validateSchedule(schedule []models.SchedulePhase) []string {
	var problems []string
	if len(schedule) == 0 {
		return []string{"schedule must have at least one phase"}
	}
	for i, phase := range schedule {
		if phase.Start == "" || phase.End == "" || phase.Label == "" {
			problems = append(problems, fmt.Sprintf("schedule phase %d is incomplete (missing start, end or label)", i+1))
			continue
		}
		start, errStart := time.Parse(scheduleDateLayout, phase.Start)
		end, errEnd := time.Parse(scheduleDateLayout, phase.End)
		if errStart != nil || errEnd != nil {
			problems = append(problems, fmt.Sprintf("schedule phase %d has an invalid date", i+1))
			continue
		}
		if end.Before(start) {
			problems = append(problems, fmt.Sprintf("schedule phase %d ends before it starts", i+1))
		}
	}
	return problems
}

// Create creates a new award owned by the calling admin
func (s *AwardService) Create(callerID string, req dto.CreateAwardRequest) (models.Award, error) {
	if req.Year <= 0 {
		return models.Award{}, apperrors.NewValidation("year must be greater than 0")
	}
	if problems := validateSchedule(req.Schedule); len(problems) > 0 {
		return models.Award{}, apperrors.NewValidation(problems...)
	}

	award := models.Award{
		Name:        req.Name,
		Description: req.Description,
		Schedule:    models.Schedule(req.Schedule),
		Year:        req.Year,
		CreatedByID: callerID,
	}

	created, err := s.awardRepo.Create(award)
	if err != nil {
		return models.Award{}, apperrors.NewInternal("creating award", err)
	}
	return created, nil
}

// ListActive retrieves awards with at least one schedule phase containing
// the given instant. The public listing only ever shows active awards.
func (s *AwardService) ListActive(now time.Time) ([]models.Award, error) {
	awards, err := s.awardRepo.FindAll()
	if err != nil {
		return nil, apperrors.NewInternal("listing awards", err)
	}

	active := make([]models.Award, 0)
	for _, award := range awards {
		if award.Schedule.ActiveAt(now) {
			active = append(active, award)
		}
	}
	return active, nil
}

// Get retrieves an award by ID regardless of schedule activity
func (s *AwardService) Get(id string) (models.Award, error) {
	award, err := s.awardRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Award{}, apperrors.NewNotFound("award")
		}
		return models.Award{}, apperrors.NewInternal("loading award", err)
	}
	return award, nil
}

// Update modifies an existing award
func (s *AwardService) Update(id string, req dto.UpdateAwardRequest) (models.Award, error) {
	award, err := s.awardRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Award{}, apperrors.NewNotFound("award")
		}
		return models.Award{}, apperrors.NewInternal("loading award", err)
	}

	if req.Name != "" {
		award.Name = req.Name
	}
	if req.Description != "" {
		award.Description = req.Description
	}
	if req.Year != 0 {
		if req.Year < 0 {
			return models.Award{}, apperrors.NewValidation("year must be greater than 0")
		}
		award.Year = req.Year
	}
	if req.Schedule != nil {
		if problems := validateSchedule(req.Schedule); len(problems) > 0 {
			return models.Award{}, apperrors.NewValidation(problems...)
		}
		award.Schedule = models.Schedule(req.Schedule)
	}

	if err := s.awardRepo.Update(award); err != nil {
		return models.Award{}, apperrors.NewInternal("updating award", err)
	}
	return award, nil
}

// Delete removes an award. Blocked while any project references it.
func (s *AwardService) Delete(id string) error {
	if _, err := s.awardRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("award")
		}
		return apperrors.NewInternal("loading award", err)
	}

	count, err := s.awardRepo.CountProjects(id)
	if err != nil {
		return apperrors.NewInternal("counting projects", err)
	}
	if count > 0 {
		return apperrors.New(apperrors.KindHasProjects, "award has associated projects and cannot be deleted")
	}

	if err := s.awardRepo.Delete(id); err != nil {
		return apperrors.NewInternal("deleting award", err)
	}
	return nil
}
