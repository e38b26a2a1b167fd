package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError_Message(t *testing.T) {
	err := NotFoundError{Resource: "User", ID: "111"}
	assert.Equal(t, "User with ID '111' not found", err.Error())
}

func TestConflictError_Message(t *testing.T) {
	err := ConflictError{Resource: "Referral", Detail: "pair already exists"}
	assert.Equal(t, "Referral conflict: pair already exists", err.Error())
}

func TestValidationError_Message(t *testing.T) {
	err := ValidationError{Field: "tg_id", Message: "must not be empty"}
	assert.Equal(t, "validation error for field 'tg_id': must not be empty", err.Error())
}

func TestInternalError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := InternalError{Message: "query failed", Cause: cause}

	assert.Contains(t, err.Error(), "query failed")
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestInternalError_NoCause(t *testing.T) {
	err := InternalError{Message: "query failed"}
	assert.Equal(t, "internal error: query failed", err.Error())
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(NotFoundError{Resource: "User", ID: "1"}))
	assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", NotFoundError{Resource: "User", ID: "1"})))
	assert.False(t, IsNotFound(errors.New("other")))
	assert.False(t, IsNotFound(nil))
}

func TestIsConflict(t *testing.T) {
	assert.True(t, IsConflict(ConflictError{Resource: "Referral"}))
	assert.True(t, IsConflict(fmt.Errorf("wrapped: %w", ConflictError{Resource: "Referral"})))
	assert.False(t, IsConflict(NotFoundError{Resource: "User"}))
}

func TestIsValidation(t *testing.T) {
	assert.True(t, IsValidation(ValidationError{Field: "tg_id"}))
	assert.False(t, IsValidation(ConflictError{Resource: "Referral"}))
}
