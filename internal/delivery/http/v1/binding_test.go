package v1

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribeBindError_ValidationErrors(t *testing.T) {
	registerValidatorTagNames()

	err := binding.Validator.ValidateStruct(&createCardRequest{Column: "nowhere"})
	require.Error(t, err)

	assert.Equal(t,
		"body.title: field required; body.column: should be one of backlog todo in_progress done",
		describeBindError(err),
	)
}

func TestDescribeBindError_UpdateAllowsEmptyRequest(t *testing.T) {
	registerValidatorTagNames()

	assert.NoError(t, binding.Validator.ValidateStruct(&updateCardRequest{}))

	column := "done"
	assert.NoError(t, binding.Validator.ValidateStruct(&updateCardRequest{Column: &column}))

	column = "later"
	err := binding.Validator.ValidateStruct(&updateCardRequest{Column: &column})
	assert.Equal(t, "body.column: should be one of backlog todo in_progress done", describeBindError(err))
}

func TestDescribeBindError_DecodeErrors(t *testing.T) {
	assert.Equal(t, "body: field required", describeBindError(io.EOF))
	assert.Equal(t, "body: JSON decode error", describeBindError(fmt.Errorf("read: %w", io.ErrUnexpectedEOF)))
	assert.Equal(t, "body: something else", describeBindError(errors.New("something else")))
}
