package services

import (
	"testing"

	"github.com/innovatehub-portal/apperrors"
	"github.com/innovatehub-portal/dto"
	"github.com/innovatehub-portal/models"
	"github.com/innovatehub-portal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func TestUpdateUserSelfOrAdminOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	alice := createUser(t, db, "alice", models.RoleAuthor)
	bob := createUser(t, db, "bob", models.RoleAuthor)
	admin := createUser(t, db, "admin1", models.RoleAdmin)

	_, err := svc.Update(bob.ID, models.RoleAuthor, alice.ID, dto.UpdateUserRequest{Name: strPtr("hijacked")})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))

	updated, err := svc.Update(alice.ID, models.RoleAuthor, alice.ID, dto.UpdateUserRequest{Name: strPtr("Alice B")})
	require.NoError(t, err)
	assert.Equal(t, "Alice B", updated.Name)

	updated, err = svc.Update(admin.ID, models.RoleAdmin, alice.ID, dto.UpdateUserRequest{City: strPtr("Uberaba")})
	require.NoError(t, err)
	assert.Equal(t, "Uberaba", updated.City)
}

func TestUpdateUserRejectsTakenEmailAndCPF(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	alice := createUser(t, db, "alice", models.RoleAuthor)
	bob := createUser(t, db, "bob", models.RoleAuthor)

	_, err := svc.Update(alice.ID, models.RoleAuthor, alice.ID, dto.UpdateUserRequest{Email: strPtr(bob.Email)})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))

	_, err = svc.Update(alice.ID, models.RoleAuthor, alice.ID, dto.UpdateUserRequest{CPF: strPtr(bob.CPF)})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))

	// Re-submitting your own email is not a conflict.
	_, err = svc.Update(alice.ID, models.RoleAuthor, alice.ID, dto.UpdateUserRequest{Email: strPtr(alice.Email)})
	require.NoError(t, err)
}

func TestUpdateUserEvaluatorKeepsSpecialty(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	evaluator := createUser(t, db, "eval1", models.RoleEvaluator)

	_, err := svc.Update(evaluator.ID, models.RoleEvaluator, evaluator.ID, dto.UpdateUserRequest{Specialty: strPtr("")})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))

	updated, err := svc.Update(evaluator.ID, models.RoleEvaluator, evaluator.ID, dto.UpdateUserRequest{Specialty: strPtr("Robotics")})
	require.NoError(t, err)
	assert.Equal(t, "Robotics", updated.Specialty)
}

func TestUpdateUserRehashesPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	alice := createUser(t, db, "alice", models.RoleAuthor)

	updated, err := svc.Update(alice.ID, models.RoleAuthor, alice.ID, dto.UpdateUserRequest{Password: strPtr("newsecret")})
	require.NoError(t, err)
	assert.NotEqual(t, "newsecret", updated.Password)
	assert.True(t, utils.CheckPassword("newsecret", updated.Password))
}

func TestListUsersByRole(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	createUser(t, db, "alice", models.RoleAuthor)
	createUser(t, db, "bob", models.RoleAuthor)
	createUser(t, db, "eval1", models.RoleEvaluator)
	createUser(t, db, "admin1", models.RoleAdmin)

	authors, err := svc.ListAuthors()
	require.NoError(t, err)
	assert.Len(t, authors, 2)

	evaluators, err := svc.ListEvaluators()
	require.NoError(t, err)
	require.Len(t, evaluators, 1)
	assert.Equal(t, models.RoleEvaluator, evaluators[0].Role)
}

func TestDeleteUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	alice := createUser(t, db, "alice", models.RoleAuthor)
	require.NoError(t, svc.Delete(alice.ID))

	_, err := svc.Get(alice.ID)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))

	err = svc.Delete("missing")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}
