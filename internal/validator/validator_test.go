package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerForm struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role" validate:"omitempty,oneof=recruiter worker"`
	OwnerID  uint   `json:"owner_id" validate:"omitempty,gt=0"`
	Internal string `json:"-" validate:"omitempty,min=3"`
}

func TestValidate_OK(t *testing.T) {
	v := New()

	err := v.Validate(&registerForm{
		Name:  "Аружан",
		Email: "a@test.com",
		Role:  "worker",
	})
	assert.NoError(t, err)
}

func TestValidate_UsesJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&registerForm{Email: "not-an-email"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "name")
	assert.Contains(t, vErr.Errors, "email")
	assert.Equal(t, "This field is required", vErr.Errors["name"])
	assert.Equal(t, "Must be a valid email address", vErr.Errors["email"])
}

func TestValidate_OneofMessage(t *testing.T) {
	v := New()

	err := v.Validate(&registerForm{
		Name:  "User",
		Email: "u@test.com",
		Role:  "admin",
	})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "Must be one of: recruiter, worker", vErr.Errors["role"])
}

func TestValidate_GtMessage(t *testing.T) {
	v := New()

	type body struct {
		RecruiterID int `json:"recruiter_id" validate:"required,gt=0"`
	}

	err := v.Validate(&body{RecruiterID: -1})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "Must be greater than 0", vErr.Errors["recruiter_id"])
}

func TestValidationError_ErrorString(t *testing.T) {
	e := &ValidationError{Errors: map[string]string{"email": "Must be a valid email address"}}
	assert.Contains(t, e.Error(), "Validation failed")
	assert.Contains(t, e.Error(), "email")
}
