package http

import (
	"errors"
	"net/http"

	"ikraph-email-agent/internal/agent"
	"ikraph-email-agent/internal/knowledge"
	pkgErrors "ikraph-email-agent/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Anything that is not a domain error came from an upstream model or the graph store.
func (h *handler) mapError(err error) error {
	if httpErr, ok := pkgErrors.AsHTTPError(err); ok {
		return httpErr
	}

	switch {
	case errors.Is(err, agent.ErrEmptyPrompt):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, agent.ErrEmptyPrompt.Error())
	case errors.Is(err, knowledge.ErrEmptyQuestion):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, knowledge.ErrEmptyQuestion.Error())
	case errors.Is(err, knowledge.ErrEmptyCypher):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, knowledge.ErrEmptyCypher.Error())
	default:
		return pkgErrors.ErrBadGateway
	}
}
