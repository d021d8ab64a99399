package services

import (
	"sync"
	"testing"

	"github.com/innovatehub-portal/apperrors"
	"github.com/innovatehub-portal/dto"
	"github.com/innovatehub-portal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitEvaluationFlipsEvaluatedAtThreshold(t *testing.T) {
	db := newTestDB(t)
	svc := NewEvaluationService(db)

	author := createUser(t, db, "author1", models.RoleAuthor)
	award := createAward(t, db, "Prize A")
	project := createProject(t, db, "P1", award, author)

	e1 := createUser(t, db, "eval1", models.RoleEvaluator)
	e2 := createUser(t, db, "eval2", models.RoleEvaluator)
	e3 := createUser(t, db, "eval3", models.RoleEvaluator)

	_, err := svc.Submit(e1.ID, dto.SubmitEvaluationRequest{ProjectID: project.ID, Score: scoreOf(8.0), Opinion: "Solid work"})
	require.NoError(t, err)
	resp, err := svc.Submit(e2.ID, dto.SubmitEvaluationRequest{ProjectID: project.ID, Score: scoreOf(7.5), Opinion: "Good but improvable"})
	require.NoError(t, err)

	assert.False(t, resp.Project.Evaluated)
	assert.Len(t, resp.Project.Evaluations, 2)

	resp, err = svc.Submit(e3.ID, dto.SubmitEvaluationRequest{ProjectID: project.ID, Score: scoreOf(9.0), Opinion: "Excellent"})
	require.NoError(t, err)

	assert.True(t, resp.Project.Evaluated)
	assert.Len(t, resp.Project.Evaluations, 3)
	assert.Equal(t, 24.5, TotalScore(resp.Project))
	assert.Equal(t, e3.ID, resp.Evaluation.Evaluator.ID)
	assert.Equal(t, e3.Name, resp.Evaluation.Evaluator.Name)
}

func TestSubmitEvaluationDuplicateRejected(t *testing.T) {
	db := newTestDB(t)
	svc := NewEvaluationService(db)

	author := createUser(t, db, "author1", models.RoleAuthor)
	award := createAward(t, db, "Prize A")
	project := createProject(t, db, "P1", award, author)
	evaluator := createUser(t, db, "eval1", models.RoleEvaluator)

	_, err := svc.Submit(evaluator.ID, dto.SubmitEvaluationRequest{ProjectID: project.ID, Score: scoreOf(8.0), Opinion: "Solid"})
	require.NoError(t, err)

	_, err = svc.Submit(evaluator.ID, dto.SubmitEvaluationRequest{ProjectID: project.ID, Score: scoreOf(8.0), Opinion: "Solid"})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindDuplicateEvaluation, apperrors.KindOf(err))

	count, err := NewProjectService(db).Get(project.ID)
	require.NoError(t, err)
	assert.Len(t, count.Evaluations, 1)
}

func TestSubmitEvaluationSelfReviewRejected(t *testing.T) {
	db := newTestDB(t)
	svc := NewEvaluationService(db)

	// An evaluator who is also in the author set must not review the project.
	reviewer := createUser(t, db, "eval-author", models.RoleEvaluator)
	author := createUser(t, db, "author1", models.RoleAuthor)
	award := createAward(t, db, "Prize A")
	project := createProject(t, db, "P1", award, author, reviewer)

	_, err := svc.Submit(reviewer.ID, dto.SubmitEvaluationRequest{ProjectID: project.ID, Score: scoreOf(5.0), Opinion: "Mine"})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindSelfEvaluation, apperrors.KindOf(err))
}

func TestSubmitEvaluationRejectsNonEvaluators(t *testing.T) {
	db := newTestDB(t)
	svc := NewEvaluationService(db)

	author := createUser(t, db, "author1", models.RoleAuthor)
	admin := createUser(t, db, "admin1", models.RoleAdmin)
	award := createAward(t, db, "Prize A")
	project := createProject(t, db, "P1", award, author)

	for _, caller := range []models.User{author, admin} {
		_, err := svc.Submit(caller.ID, dto.SubmitEvaluationRequest{ProjectID: project.ID, Score: scoreOf(5.0), Opinion: "Opinion"})
		require.Error(t, err)
		assert.Equal(t, apperrors.KindInvalidEvaluator, apperrors.KindOf(err))
	}

	_, err := svc.Submit("no-such-user", dto.SubmitEvaluationRequest{ProjectID: project.ID, Score: scoreOf(5.0), Opinion: "Opinion"})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindInvalidEvaluator, apperrors.KindOf(err))
}

func TestSubmitEvaluationProjectNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewEvaluationService(db)
	evaluator := createUser(t, db, "eval1", models.RoleEvaluator)

	_, err := svc.Submit(evaluator.ID, dto.SubmitEvaluationRequest{ProjectID: "missing", Score: scoreOf(5.0), Opinion: "Opinion"})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestSubmitEvaluationScoreBounds(t *testing.T) {
	db := newTestDB(t)
	svc := NewEvaluationService(db)

	author := createUser(t, db, "author1", models.RoleAuthor)
	award := createAward(t, db, "Prize A")
	project := createProject(t, db, "P1", award, author)
	evaluator := createUser(t, db, "eval1", models.RoleEvaluator)

	for _, score := range []float64{-0.1, 10.1} {
		_, err := svc.Submit(evaluator.ID, dto.SubmitEvaluationRequest{ProjectID: project.ID, Score: scoreOf(score), Opinion: "Opinion"})
		require.Error(t, err)
		assert.Equal(t, apperrors.KindInvalidScore, apperrors.KindOf(err))
	}

	// Boundary values are accepted.
	_, err := svc.Submit(evaluator.ID, dto.SubmitEvaluationRequest{ProjectID: project.ID, Score: scoreOf(0.0), Opinion: "Opinion"})
	require.NoError(t, err)
}

func TestSubmitEvaluationEmptyOpinionRejected(t *testing.T) {
	db := newTestDB(t)
	svc := NewEvaluationService(db)

	author := createUser(t, db, "author1", models.RoleAuthor)
	award := createAward(t, db, "Prize A")
	project := createProject(t, db, "P1", award, author)
	evaluator := createUser(t, db, "eval1", models.RoleEvaluator)

	_, err := svc.Submit(evaluator.ID, dto.SubmitEvaluationRequest{ProjectID: project.ID, Score: scoreOf(5.0), Opinion: "   "})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindInvalidOpinion, apperrors.KindOf(err))
}

func TestSubmitEvaluationRejectedOnceFullyEvaluated(t *testing.T) {
	db := newTestDB(t)
	svc := NewEvaluationService(db)

	author := createUser(t, db, "author1", models.RoleAuthor)
	award := createAward(t, db, "Prize A")
	project := createProject(t, db, "P1", award, author)

	for i, name := range []string{"eval1", "eval2", "eval3"} {
		evaluator := createUser(t, db, name, models.RoleEvaluator)
		_, err := svc.Submit(evaluator.ID, dto.SubmitEvaluationRequest{ProjectID: project.ID, Score: scoreOf(float64(5 + i)), Opinion: "Opinion"})
		require.NoError(t, err)
	}

	late := createUser(t, db, "eval4", models.RoleEvaluator)
	_, err := svc.Submit(late.ID, dto.SubmitEvaluationRequest{ProjectID: project.ID, Score: scoreOf(9.0), Opinion: "Too late"})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindProjectFullyEvaluated, apperrors.KindOf(err))

	var count int64
	require.NoError(t, db.Model(&models.Evaluation{}).Where("project_id = ?", project.ID).Count(&count).Error)
	assert.EqualValues(t, 3, count)
}

func TestSubmitEvaluationConcurrentThirdAndFourth(t *testing.T) {
	db := newTestDB(t)
	svc := NewEvaluationService(db)

	author := createUser(t, db, "author1", models.RoleAuthor)
	award := createAward(t, db, "Prize A")
	project := createProject(t, db, "P1", award, author)

	for _, name := range []string{"eval1", "eval2"} {
		evaluator := createUser(t, db, name, models.RoleEvaluator)
		_, err := svc.Submit(evaluator.ID, dto.SubmitEvaluationRequest{ProjectID: project.ID, Score: scoreOf(7.0), Opinion: "Opinion"})
		require.NoError(t, err)
	}

	e3 := createUser(t, db, "eval3", models.RoleEvaluator)
	e4 := createUser(t, db, "eval4", models.RoleEvaluator)

	var wg sync.WaitGroup
	results := make(chan error, 2)
	for _, evaluator := range []models.User{e3, e4} {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, err := svc.Submit(id, dto.SubmitEvaluationRequest{ProjectID: project.ID, Score: scoreOf(8.0), Opinion: "Race"})
			results <- err
		}(evaluator.ID)
	}
	wg.Wait()
	close(results)

	var accepted, rejected int
	for err := range results {
		if err == nil {
			accepted++
		} else {
			rejected++
			assert.Equal(t, apperrors.KindProjectFullyEvaluated, apperrors.KindOf(err))
		}
	}
	assert.Equal(t, 1, accepted)
	assert.Equal(t, 1, rejected)

	var count int64
	require.NoError(t, db.Model(&models.Evaluation{}).Where("project_id = ?", project.ID).Count(&count).Error)
	assert.EqualValues(t, 3, count)

	var reloaded models.Project
	require.NoError(t, db.First(&reloaded, "id = ?", project.ID).Error)
	assert.True(t, reloaded.Evaluated)
}

func TestUpdateEvaluationRevalidatesShapeOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewEvaluationService(db)

	author := createUser(t, db, "author1", models.RoleAuthor)
	award := createAward(t, db, "Prize A")
	project := createProject(t, db, "P1", award, author)
	evaluator := createUser(t, db, "eval1", models.RoleEvaluator)

	resp, err := svc.Submit(evaluator.ID, dto.SubmitEvaluationRequest{ProjectID: project.ID, Score: scoreOf(6.0), Opinion: "First pass"})
	require.NoError(t, err)

	updated, err := svc.Update(resp.Evaluation.ID, dto.UpdateEvaluationRequest{Score: scoreOf(9.5)})
	require.NoError(t, err)
	assert.Equal(t, 9.5, updated.Score)

	_, err = svc.Update(resp.Evaluation.ID, dto.UpdateEvaluationRequest{Score: scoreOf(11.0)})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindInvalidScore, apperrors.KindOf(err))

	empty := ""
	_, err = svc.Update(resp.Evaluation.ID, dto.UpdateEvaluationRequest{Opinion: &empty})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindInvalidOpinion, apperrors.KindOf(err))
}

func TestUpdateEvaluationReassignmentCollision(t *testing.T) {
	db := newTestDB(t)
	svc := NewEvaluationService(db)

	author := createUser(t, db, "author1", models.RoleAuthor)
	award := createAward(t, db, "Prize A")
	project := createProject(t, db, "P1", award, author)
	e1 := createUser(t, db, "eval1", models.RoleEvaluator)
	e2 := createUser(t, db, "eval2", models.RoleEvaluator)

	_, err := svc.Submit(e1.ID, dto.SubmitEvaluationRequest{ProjectID: project.ID, Score: scoreOf(7.0), Opinion: "First"})
	require.NoError(t, err)
	resp, err := svc.Submit(e2.ID, dto.SubmitEvaluationRequest{ProjectID: project.ID, Score: scoreOf(8.0), Opinion: "Second"})
	require.NoError(t, err)

	// Reassigning onto an existing (project, evaluator) pair hits the unique
	// index and surfaces as a duplicate, not an internal error.
	_, err = svc.Update(resp.Evaluation.ID, dto.UpdateEvaluationRequest{EvaluatorID: &e1.ID})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindDuplicateEvaluation, apperrors.KindOf(err))

	// Reassigning to a fresh pair still succeeds.
	other := createProject(t, db, "P2", award, author)
	updated, err := svc.Update(resp.Evaluation.ID, dto.UpdateEvaluationRequest{ProjectID: &other.ID})
	require.NoError(t, err)
	assert.Equal(t, other.ID, updated.ProjectID)
}

func TestDeleteEvaluationIsUngated(t *testing.T) {
	db := newTestDB(t)
	svc := NewEvaluationService(db)

	author := createUser(t, db, "author1", models.RoleAuthor)
	award := createAward(t, db, "Prize A")
	project := createProject(t, db, "P1", award, author)

	var last string
	for _, name := range []string{"eval1", "eval2", "eval3"} {
		evaluator := createUser(t, db, name, models.RoleEvaluator)
		resp, err := svc.Submit(evaluator.ID, dto.SubmitEvaluationRequest{ProjectID: project.ID, Score: scoreOf(7.0), Opinion: "Opinion"})
		require.NoError(t, err)
		last = resp.Evaluation.ID
	}

	// Deleting from a locked project is allowed; the lock does not roll back.
	require.NoError(t, svc.Delete(last))

	var reloaded models.Project
	require.NoError(t, db.First(&reloaded, "id = ?", project.ID).Error)
	assert.True(t, reloaded.Evaluated)

	err := svc.Delete(last)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}
