package services

import (
	"sort"

	"github.com/innovatehub-portal/apperrors"
	"github.com/innovatehub-portal/models"
	"github.com/innovatehub-portal/repositories"
	"gorm.io/gorm"
)

// WinnerCount is how many top-ranked projects count as winners.
const WinnerCount = 3

// RankingService derives the project ranking from summed evaluation scores.
// The winner flag on projects is a cache of this ranking, refreshed only by
// an explicit recompute, never as a side effect of evaluation writes.
type RankingService struct {
	projectRepo *repositories.ProjectRepository
}

// NewRankingService creates a new ranking service instance
func NewRankingService(db *gorm.DB) *RankingService {
	return &RankingService{projectRepo: repositories.NewProjectRepository(db)}
}

// totalTenths sums a project's evaluation scores in integer tenths,
// keeping one-decimal sums exact.
func totalTenths(project models.Project) int64 {
	var total int64
	for _, evaluation := range project.Evaluations {
		total += evaluation.ScoreTenths()
	}
	return total
}

// TotalScore returns a project's aggregate score.
func TotalScore(project models.Project) float64 {
	return float64(totalTenths(project)) / 10
}

// Rank returns all projects with at least one evaluation, ordered by
// descending total score. The sort is stable: ties keep insertion order.
func (s *RankingService) Rank() ([]models.Project, error) {
	projects, err := s.projectRepo.FindWithEvaluations()
	if err != nil {
		return nil, apperrors.NewInternal("loading ranked projects", err)
	}

	sort.SliceStable(projects, func(i, j int) bool {
		return totalTenths(projects[i]) > totalTenths(projects[j])
	})
	return projects, nil
}

// Winners returns the top-ranked projects, at most WinnerCount of them
func (s *RankingService) Winners() ([]models.Project, error) {
	ranked, err := s.Rank()
	if err != nil {
		return nil, err
	}
	if len(ranked) > WinnerCount {
		ranked = ranked[:WinnerCount]
	}
	return ranked, nil
}

// RecomputeWinners materializes the current top ranking into the winner
// flag: exactly the winning projects end up flagged.
func (s *RankingService) RecomputeWinners() ([]models.Project, error) {
	winners, err := s.Winners()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(winners))
	for i, project := range winners {
		ids[i] = project.ID
	}
	if err := s.projectRepo.SetWinners(ids); err != nil {
		return nil, apperrors.NewInternal("persisting winners", err)
	}

	for i := range winners {
		winners[i].Winner = true
	}
	return winners, nil
}
