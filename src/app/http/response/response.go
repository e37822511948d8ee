// Package response is the navigation layer: JSON data responses, HTML pages,
// redirects, and the fallback pages for failures.
//
// A request asks for data instead of a page when it carries the _data query
// parameter or its Accept header names application/json.
package response

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jokester/src/app/http/view"
	"jokester/src/core/domain"
)

// Error represents an error response.
type Error struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	// Code is a machine-readable error code (e.g., "NOT_FOUND", "VALIDATION_ERROR")
	Code string `json:"code"`

	// Message is a human-readable error description
	Message string `json:"message"`

	// Field is the field that caused the error (for validation errors)
	Field string `json:"field,omitempty"`

	// RequestID is the request ID for debugging
	RequestID string `json:"request_id,omitempty"`
}

// Redirector is implemented by failures that resolve to a redirect,
// such as a missing session on a route that requires one.
type Redirector interface {
	RedirectTo() string
}

// WantsData reports whether the client asked for JSON rather than HTML.
func WantsData(c *gin.Context) bool {
	if _, ok := c.GetQuery("_data"); ok {
		return true
	}
	return strings.Contains(c.GetHeader("Accept"), "application/json")
}

// Data sends v as JSON to data clients or renders page for everyone else.
func Data(c *gin.Context, status int, v any, page string, pageData any) {
	if WantsData(c) {
		c.JSON(status, v)
		return
	}
	c.HTML(status, page, pageData)
}

// Redirect sends a 302 to location.
func Redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
}

func errorBody(code, message, field, requestID string) Error {
	return Error{Error: ErrorDetail{Code: code, Message: message, Field: field, RequestID: requestID}}
}

// BadRequest sends a 400 response.
func BadRequest(c *gin.Context, message, requestID string) {
	c.JSON(http.StatusBadRequest, errorBody("BAD_REQUEST", message, "", requestID))
}

// Unauthorized sends a 401: JSON for data clients, the login prompt otherwise.
func Unauthorized(c *gin.Context, requestID string) {
	Data(c, http.StatusUnauthorized,
		errorBody("UNAUTHORIZED", "Unauthorized", "", requestID),
		view.PageUnauthorized, view.MessagePage{Message: view.MsgMustLogIn},
	)
}

// NotFound sends a 404.
func NotFound(c *gin.Context, message, requestID string) {
	Data(c, http.StatusNotFound,
		errorBody("NOT_FOUND", message, "", requestID),
		view.PageNotFound, view.MessagePage{Message: view.MsgNotFound},
	)
}

// InternalError sends a 500 with the generic apology.
func InternalError(c *gin.Context, requestID string) {
	Data(c, http.StatusInternalServerError,
		errorBody("INTERNAL_ERROR", "An unexpected error occurred", "", requestID),
		view.PageError, view.MessagePage{Message: view.MsgUnexpected},
	)
}

// FromDomainError dispatches a failure to its fallback. Redirect failures
// become redirects, unauthorized becomes the login prompt, and anything not
// recognised gets the generic error page.
func FromDomainError(c *gin.Context, err error, requestID string) {
	var r Redirector
	switch {
	case errors.As(err, &r):
		Redirect(c, r.RedirectTo())
	case domain.IsUnauthorized(err):
		Unauthorized(c, requestID)
	case domain.IsNotFound(err):
		NotFound(c, err.Error(), requestID)
	case domain.IsValidationError(err):
		var de *domain.DomainError
		if errors.As(err, &de) {
			c.JSON(http.StatusBadRequest, errorBody("VALIDATION_ERROR", de.Message, de.Field, requestID))
			return
		}
		BadRequest(c, err.Error(), requestID)
	default:
		InternalError(c, requestID)
	}
}
