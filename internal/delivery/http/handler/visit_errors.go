package handler

import (
	"errors"
	"net/http"

	"medcore-clinic/internal/domain/entity"
	"medcore-clinic/internal/domain/repository"
	"medcore-clinic/internal/usecase"
	"medcore-clinic/pkg/response"
)

// visitError maps the errors shared by every visit mutation: missing
// aggregate, illegal workflow transition, and stale-version writes.
// Returns false when the error needs handler-specific mapping.
func visitError(w http.ResponseWriter, err error) bool {
	var transitionErr *entity.InvalidTransitionError
	switch {
	case errors.Is(err, usecase.ErrVisitNotFound):
		response.NotFound(w, "Visit not found")
	case errors.As(err, &transitionErr):
		response.Conflict(w, transitionErr.Error())
	case errors.Is(err, repository.ErrVersionConflict):
		response.Conflict(w, "Visit was modified concurrently, reload and retry")
	default:
		return false
	}
	return true
}
