package services

import (
	"TaskNest/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestTaskUpdateSetPatchesOnlySentFields(t *testing.T) {
	// a completion toggle must not touch the title
	set := taskUpdateSet(models.TaskRequest{Completed: boolPtr(true)})
	assert.Equal(t, true, set["completed"])
	assert.NotContains(t, set, "title")
	assert.Contains(t, set, "updatedAt")

	// a rename must not reset the completion flag
	set = taskUpdateSet(models.TaskRequest{Title: strPtr("  Buy milk ")})
	assert.Equal(t, "Buy milk", set["title"])
	assert.NotContains(t, set, "completed")
}

func TestTaskUpdateSetWithEmptyRequestOnlyTouchesTimestamp(t *testing.T) {
	set := taskUpdateSet(models.TaskRequest{})
	assert.Len(t, set, 1)
	assert.Contains(t, set, "updatedAt")
}
