// Package errors provides RFC 7807 Problem Details for the HTTP API
package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"sort"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

// As is errors.As, re-exported for callers that import this package as errors
var As = errors.As

// Problem type URIs
const (
	TypeValidationError  = "https://walletapi.dev/problems/validation-error"
	TypeNotFound         = "https://walletapi.dev/problems/not-found"
	TypeMethodNotAllowed = "https://walletapi.dev/problems/method-not-allowed"
	TypeInternalError    = "https://walletapi.dev/problems/internal-error"
)

// Problem titles
const (
	TitleValidationError  = "Validation Error"
	TitleNotFound         = "Not Found"
	TitleMethodNotAllowed = "Method Not Allowed"
	TitleInternalError    = "Internal Server Error"
)

// ProblemDetails represents RFC 7807 compliant error response
type ProblemDetails struct {
	// Type is a URI reference that identifies the problem type
	Type string `json:"type" description:"URI reference identifying the problem type"`
	// Title is a short, human-readable summary of the problem type
	Title string `json:"title" description:"Short summary of the problem type"`
	// Status is the HTTP status code
	Status int `json:"status" description:"HTTP status code"`
	// Detail is a human-readable explanation specific to this occurrence of the problem
	Detail string `json:"detail" description:"Explanation specific to this occurrence"`
	// Instance is a URI reference that identifies the specific occurrence of the problem
	Instance string `json:"instance,omitempty" description:"Request path that produced the problem"`
	Timestamp time.Time `json:"timestamp" description:"Time the problem was produced"`
	TraceID   string    `json:"traceId,omitempty" description:"Request identifier"`
	// Errors contains field-specific decoding errors
	Errors []ValidationError `json:"errors,omitempty" description:"Field-specific decoding errors"`
}

// ValidationError represents a field-specific decoding error
type ValidationError struct {
	Field   string `json:"field" description:"Offending field or parameter"`
	Message string `json:"message" description:"What was wrong with it"`
	Code    string `json:"code,omitempty" description:"Machine-readable error code"`
}

// NewProblemDetails creates a new RFC 7807 compliant error
func NewProblemDetails(problemType, title string, status int, detail, instance string) *ProblemDetails {
	return &ProblemDetails{
		Type:      problemType,
		Title:     title,
		Status:    status,
		Detail:    detail,
		Instance:  instance,
		Timestamp: time.Now().UTC(),
	}
}

// WithTraceID adds a trace ID to the problem details
func (p *ProblemDetails) WithTraceID(traceID string) *ProblemDetails {
	p.TraceID = traceID
	return p
}

// AddValidationError adds a single validation error
func (p *ProblemDetails) AddValidationError(field, message, code string) *ProblemDetails {
	p.Errors = append(p.Errors, ValidationError{
		Field:   field,
		Message: message,
		Code:    code,
	})
	return p
}

// Error implements the error interface
func (p *ProblemDetails) Error() string {
	return fmt.Sprintf("[%d] %s: %s", p.Status, p.Title, p.Detail)
}

// NewValidationError creates a validation error
func NewValidationError(detail, instance string) *ProblemDetails {
	return NewProblemDetails(TypeValidationError, TitleValidationError, http.StatusBadRequest, detail, instance)
}

// NewNotFoundError creates a not found error
func NewNotFoundError(detail, instance string) *ProblemDetails {
	return NewProblemDetails(TypeNotFound, TitleNotFound, http.StatusNotFound, detail, instance)
}

// NewMethodNotAllowedError creates a method not allowed error
func NewMethodNotAllowedError(detail, instance string) *ProblemDetails {
	return NewProblemDetails(TypeMethodNotAllowed, TitleMethodNotAllowed, http.StatusMethodNotAllowed, detail, instance)
}

// NewInternalError creates an internal server error
func NewInternalError(detail, instance string) *ProblemDetails {
	return NewProblemDetails(TypeInternalError, TitleInternalError, http.StatusInternalServerError, detail, instance)
}

// FromDecodeError turns a request decoding failure into a 400 problem.
// Known decoder and validator errors are broken out into field entries;
// anything else is reported through the detail only. params holds the raw
// path and query values of the request and is used to name the parameter a
// malformed integer came from.
func FromDecodeError(err error, instance string, params url.Values) *ProblemDetails {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
		numErr    *strconv.NumError
		fieldErrs validator.ValidationErrors
	)

	switch {
	case As(err, &typeErr):
		p := NewValidationError("request body has the wrong type for a field", instance)
		return p.AddValidationError(typeErr.Field, fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value), "invalid_type")
	case As(err, &syntaxErr):
		p := NewValidationError("request body is not valid JSON", instance)
		return p.AddValidationError("body", fmt.Sprintf("syntax error at offset %d", syntaxErr.Offset), "malformed_json")
	case As(err, &numErr):
		p := NewValidationError("parameter is not a valid integer", instance)
		return p.AddValidationError(parameterName(params, numErr.Num), fmt.Sprintf("%q: %v", numErr.Num, numErr.Err), "invalid_integer")
	case As(err, &fieldErrs):
		p := NewValidationError("request body is missing required fields", instance)
		for _, fe := range fieldErrs {
			p.AddValidationError(fe.Field(), fieldMessage(fe), fe.Tag())
		}
		return p
	default:
		return NewValidationError(err.Error(), instance)
	}
}

// parameterName finds the parameter carrying value. Names are checked in
// sorted order; "parameter" is returned when nothing matches.
func parameterName(params url.Values, value string) string {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if slices.Contains(params[name], value) {
			return name
		}
	}
	return "parameter"
}

func fieldMessage(fe validator.FieldError) string {
	if fe.Tag() == "required" {
		return "is required"
	}
	return fmt.Sprintf("failed %s validation", fe.Tag())
}
