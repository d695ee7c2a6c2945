package services

import (
	"TaskNest/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileUpdateSetPatchesOnlySentFields(t *testing.T) {
	// the profile-edit flow sends just name and email; everything else in
	// the stored document must survive the update
	set := profileUpdateSet(models.UpdateProfileRequest{
		Name:  strPtr("  Alice  "),
		Email: strPtr("Alice@X.COM"),
	})

	assert.Equal(t, "Alice", set["name"])
	assert.Equal(t, "alice@x.com", set["email"])
	assert.Contains(t, set, "updatedAt")
	for _, key := range []string{"profileImage", "coverPhoto", "gender", "mobileNumber", "address", "qualification", "workStatus"} {
		assert.NotContains(t, set, key)
	}
}

func TestProfileUpdateSetWritesAllSentFields(t *testing.T) {
	set := profileUpdateSet(models.UpdateProfileRequest{
		Gender:       strPtr("female"),
		MobileNumber: strPtr("555-0101"),
		WorkStatus:   strPtr("student"),
	})

	assert.Equal(t, "female", set["gender"])
	assert.Equal(t, "555-0101", set["mobileNumber"])
	assert.Equal(t, "student", set["workStatus"])
	assert.NotContains(t, set, "name")
	assert.NotContains(t, set, "email")
}
