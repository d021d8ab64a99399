package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessageFormats(t *testing.T) {
	assert.Equal(t, "project not found", NewNotFound("project").Error())
	assert.Equal(t, "validation failed: score out of range; opinion empty",
		NewValidation("score out of range", "opinion empty").Error())

	cause := errors.New("connection refused")
	assert.Equal(t, "loading project: connection refused", NewInternal("loading project", cause).Error())
}

func TestUnwrapExposesInternalCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewInternal("loading project", cause)
	assert.ErrorIs(t, err, cause)

	assert.Nil(t, New(KindConflict, "email already registered").Unwrap())
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindSelfEvaluation, KindOf(New(KindSelfEvaluation, "own project")))
	assert.Equal(t, KindValidation, KindOf(NewValidation("bad")))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))
	assert.Equal(t, KindInternal, KindOf(nil))

	// Wrapped AppErrors are still recognized.
	wrapped := fmt.Errorf("handling request: %w", New(KindDuplicateEvaluation, "already evaluated"))
	assert.Equal(t, KindDuplicateEvaluation, KindOf(wrapped))
}

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		kind Kind
		want int
	}{
		{KindUnauthenticated, http.StatusUnauthorized},
		{KindForbidden, http.StatusForbidden},
		{KindNotFound, http.StatusNotFound},
		{KindConflict, http.StatusConflict},
		{KindInternal, http.StatusInternalServerError},
		{KindValidation, http.StatusBadRequest},
		{KindSelfEvaluation, http.StatusBadRequest},
		{KindDuplicateEvaluation, http.StatusBadRequest},
		{KindProjectLocked, http.StatusBadRequest},
		{KindProjectFullyEvaluated, http.StatusBadRequest},
		{KindHasEvaluations, http.StatusBadRequest},
		{KindHasProjects, http.StatusBadRequest},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, New(tc.kind, "x").HTTPStatus())
	}
}
