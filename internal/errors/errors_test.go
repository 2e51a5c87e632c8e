package errors_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/greenvalley/rpg-core/internal/errors"
)

func TestError_Error(t *testing.T) {
	err := errors.New(errors.CodeNotFound, "item not found")
	assert.Equal(t, "NOT_FOUND: item not found", err.Error())

	wrapped := errors.Wrap(fmt.Errorf("redis: connection refused"), "failed to load player")
	assert.Equal(t, errors.CodeInternal, wrapped.Code)
	assert.Contains(t, wrapped.Error(), "connection refused")
}

func TestWrap_PreservesCode(t *testing.T) {
	inner := errors.ResourceExhausted("not enough gold")
	outer := errors.Wrap(inner, "heal failed")

	assert.Equal(t, errors.CodeResourceExhausted, outer.Code)
	assert.True(t, stderrors.Is(outer, inner))
}

func TestWrap_Nil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, "nothing"))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, errors.CodeOK, errors.GetCode(nil))
	assert.Equal(t, errors.CodeAborted, errors.GetCode(errors.Aborted("version conflict")))
	assert.Equal(t, errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
}

func TestCodePredicates(t *testing.T) {
	assert.True(t, errors.IsFailedPrecondition(errors.FailedPrecondition("not in combat")))
	assert.True(t, errors.IsResourceExhausted(errors.ResourceExhausted("cooldown active")))
	assert.False(t, errors.IsNotFound(errors.Internal("boom")))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusPreconditionFailed, errors.CodeFailedPrecondition.HTTPStatus())
	assert.Equal(t, http.StatusTooManyRequests, errors.CodeResourceExhausted.HTTPStatus())
	assert.Equal(t, http.StatusConflict, errors.CodeAborted.HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, errors.Code("UNKNOWN").HTTPStatus())
}

func TestValidationBuilder(t *testing.T) {
	vb := errors.NewValidationBuilder()
	assert.NoError(t, vb.Build())

	vb.RequiredField("Catalog")
	vb.Fieldf("Roller", "is invalid: %s", "nil source")
	err := vb.Build()

	assert.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "Catalog: is required")
	assert.Contains(t, err.Error(), "Roller")
}
