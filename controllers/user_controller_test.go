package controllers

import (
	"TaskNest/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestUpdateProfileAcceptsNameAndEmailOnly(t *testing.T) {
	err := validateProfileUpdate(models.UpdateProfileRequest{
		Name:  strPtr("Alice"),
		Email: strPtr("a@x.com"),
	})
	assert.Nil(t, err)
}

func TestUpdateProfileValidatesOnlySentFields(t *testing.T) {
	// absent fields are not checked
	err := validateProfileUpdate(models.UpdateProfileRequest{})
	assert.Nil(t, err)

	err = validateProfileUpdate(models.UpdateProfileRequest{Name: strPtr("   ")})
	require.NotNil(t, err)
	assert.Equal(t, "Name is required", err.Message)

	err = validateProfileUpdate(models.UpdateProfileRequest{Email: strPtr("not-an-email")})
	require.NotNil(t, err)

	err = validateProfileUpdate(models.UpdateProfileRequest{Gender: strPtr("unknown")})
	require.NotNil(t, err)
	assert.Equal(t, "Invalid gender", err.Message)

	err = validateProfileUpdate(models.UpdateProfileRequest{WorkStatus: strPtr("retired")})
	require.NotNil(t, err)
}
