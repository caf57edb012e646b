package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const problemContentType = "application/problem+json"

const (
	errCodeValidation = "validation_error"
	errCodeNotFound   = "not_found"
	errCodeHTTP       = "http_error"
	errCodeInternal   = "internal_server_error"
)

// apiError is rendered as an RFC 7807 problem details object.
type apiError struct {
	Type   string
	Title  string
	Status int
	Detail string
}

func newAPIError(status int, code, detail string) apiError {
	return apiError{
		Type:   "/errors/" + code,
		Title:  code,
		Status: status,
		Detail: detail,
	}
}

func (e apiError) Error() string {
	return e.Detail
}

type problemResponse struct {
	Type          string `json:"type"`
	Title         string `json:"title"`
	Status        int    `json:"status"`
	Detail        string `json:"detail"`
	CorrelationID string `json:"correlation_id"`
	Instance      string `json:"instance"`
}

func abort(c *gin.Context, err apiError) {
	// gin keeps a Content-Type that is already set.
	c.Header("Content-Type", problemContentType)
	c.AbortWithStatusJSON(err.Status, problemResponse{
		Type:          err.Type,
		Title:         err.Title,
		Status:        err.Status,
		Detail:        err.Detail,
		CorrelationID: correlationID(c),
		Instance:      "/errors/" + uuid.NewString(),
	})
}

// newRequestValidationError reports a request that failed binding.
func newRequestValidationError(detail string) apiError {
	err := newAPIError(http.StatusUnprocessableEntity, errCodeValidation, detail)
	err.Type = "/errors/validation"
	return err
}

// newValidationError reports a request rejected by the card rules.
func newValidationError(detail string) apiError {
	return newAPIError(http.StatusUnprocessableEntity, errCodeValidation, detail)
}

func newNotFoundError(detail string) apiError {
	return newAPIError(http.StatusNotFound, errCodeNotFound, detail)
}

func newHTTPError(status int) apiError {
	err := newAPIError(status, errCodeHTTP, http.StatusText(status))
	err.Type = fmt.Sprintf("/errors/http_%d", status)
	return err
}

func newInternalError(detail string) apiError {
	err := newAPIError(http.StatusInternalServerError, errCodeInternal, detail)
	err.Type = "/errors/internal"
	return err
}
