package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerTagNamesOnce sync.Once

// registerValidatorTagNames makes validation errors
// report JSON field names instead of Go ones.
func registerValidatorTagNames() {
	registerTagNamesOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// bindJSON aborts the request with a problem response if req can't be bound.
func (h *handlerImpl) bindJSON(c *gin.Context, req any) bool {
	if c.ContentType() != binding.MIMEJSON {
		h.requestLogger(c).Error().
			Str("content_type", c.ContentType()).
			Msg("unsupported content type")
		abort(c, newRequestValidationError("body: content type should be "+binding.MIMEJSON))
		return false
	}

	err := c.ShouldBindJSON(req)
	if err != nil {
		h.requestLogger(c).Error().
			Err(err).
			Msg("failed to bind json")

		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			abort(c, newHTTPError(http.StatusRequestEntityTooLarge))
			return false
		}
		abort(c, newRequestValidationError(describeBindError(err)))
		return false
	}
	return true
}

// describeBindError renders err as "loc: msg" pairs joined by "; ".
func describeBindError(err error) string {
	var (
		validationErrs validator.ValidationErrors
		typeErr        *json.UnmarshalTypeError
		syntaxErr      *json.SyntaxError
	)
	switch {
	case errors.As(err, &validationErrs):
		msgs := make([]string, len(validationErrs))
		for i, fe := range validationErrs {
			msgs[i] = "body." + fe.Field() + ": " + describeFieldError(fe)
		}
		return strings.Join(msgs, "; ")
	case errors.As(err, &typeErr):
		return fmt.Sprintf("body.%s: should be a valid %s", typeErr.Field, typeErr.Type)
	case errors.As(err, &syntaxErr):
		return fmt.Sprintf("body: JSON decode error at offset %d", syntaxErr.Offset)
	case errors.Is(err, io.EOF):
		return "body: field required"
	case errors.Is(err, io.ErrUnexpectedEOF):
		return "body: JSON decode error"
	default:
		return "body: " + err.Error()
	}
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "oneof":
		return "should be one of " + fe.Param()
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}
