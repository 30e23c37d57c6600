// Package server provides the HTTP REST API for the resume parser.
package server

import (
	"net/http"

	"github.com/jonathan/resume-parser/internal/correction"
	"github.com/jonathan/resume-parser/internal/pipeline"
)

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return "validation error: " + e.Field + " - " + e.Message
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *pipeline.EmptyInputError, *correction.InvalidPathError, *ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
