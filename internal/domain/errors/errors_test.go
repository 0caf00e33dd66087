package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Constructors(t *testing.T) {
	err := NewAppError(http.StatusBadRequest, CodeBadRequest, "bad", ErrBadRequest)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, CodeBadRequest, err.Code)
	assert.Equal(t, "bad", err.Message)
	assert.Equal(t, ErrBadRequest.Error(), err.Error())

	notFound := NotFound("missing")
	assert.Equal(t, http.StatusNotFound, notFound.Status)
	assert.Equal(t, CodeNotFound, notFound.Code)

	conflict := Conflict("exists")
	assert.Equal(t, http.StatusConflict, conflict.Status)
	assert.Equal(t, CodeConflict, conflict.Code)
	assert.ErrorIs(t, conflict, ErrAlreadyExists)

	internal := InternalError(stderrors.New("db down"))
	assert.Equal(t, http.StatusInternalServerError, internal.Status)
	assert.Equal(t, CodeInternalError, internal.Code)

	custom := NewError("custom", ErrForbidden)
	assert.Equal(t, ErrForbidden.Error(), custom.Error())

	badReq := BadRequest("bad request")
	assert.Equal(t, http.StatusBadRequest, badReq.Status)
	assert.Equal(t, CodeInvalidInput, badReq.Code)

	unauth := Unauthorized("unauthorized")
	assert.Equal(t, http.StatusUnauthorized, unauth.Status)
	assert.Equal(t, CodeUnauthorized, unauth.Code)

	forbidden := Forbidden("forbidden")
	assert.Equal(t, http.StatusForbidden, forbidden.Status)
	assert.Equal(t, CodeForbidden, forbidden.Code)

	internalMsg := InternalServerError("boom")
	assert.Equal(t, http.StatusInternalServerError, internalMsg.Status)
	assert.Equal(t, "boom", internalMsg.Message)
	assert.Equal(t, "boom", internalMsg.Error())
}

func TestAppError_FlowErrors(t *testing.T) {
	v := Validation(map[string]string{"email": "Email is required."})
	assert.Equal(t, http.StatusUnprocessableEntity, v.Status)
	assert.Equal(t, CodeValidationFailed, v.Code)
	assert.Equal(t, "Email is required.", v.Fields["email"])

	c := ConfirmationRequired("confirm")
	assert.Equal(t, http.StatusPreconditionRequired, c.Status)
	assert.ErrorIs(t, c, ErrConfirmationRequired)

	s := StepOutOfOrder("verify first")
	assert.Equal(t, http.StatusConflict, s.Status)
	assert.Equal(t, CodeStepOutOfOrder, s.Code)

	g := BadGateway("assistant down", stderrors.New("dial tcp"))
	assert.Equal(t, http.StatusBadGateway, g.Status)
	assert.ErrorIs(t, g, ErrUpstream)
}

func TestFromError(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{fmt.Errorf("find payment: %w", ErrNotFound), http.StatusNotFound, CodeNotFound},
		{fmt.Errorf("create: %w", ErrAlreadyExists), http.StatusConflict, CodeConflict},
		{ErrInvalidInput, http.StatusBadRequest, CodeInvalidInput},
		{ErrInvalidCredentials, http.StatusUnauthorized, CodeUnauthorized},
		{ErrForbidden, http.StatusForbidden, CodeForbidden},
		{ErrConfirmationRequired, http.StatusPreconditionRequired, CodeConfirmationRequired},
		{ErrStepOutOfOrder, http.StatusConflict, CodeStepOutOfOrder},
		{stderrors.New("boom"), http.StatusInternalServerError, CodeInternalError},
		{fmt.Errorf("wrapped: %w", NotFound("gone")), http.StatusNotFound, CodeNotFound},
	}
	for _, tc := range cases {
		got := FromError(tc.err)
		assert.Equal(t, tc.status, got.Status, tc.err.Error())
		assert.Equal(t, tc.code, got.Code, tc.err.Error())
	}
}
