package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@x.com", NormalizeEmail("A@X.COM"))
	assert.Equal(t, "a@x.com", NormalizeEmail("  a@x.com "))
	assert.Equal(t, "mixed.case@example.org", NormalizeEmail("Mixed.Case@Example.Org"))
}

func TestOwnerFiltersScopeByCaller(t *testing.T) {
	owner := primitive.NewObjectID()
	stranger := primitive.NewObjectID()
	doc := primitive.NewObjectID()

	// A by-id lookup always carries the caller's id, so a document owned by
	// another user can never match.
	filter := taskOwnerFilter(doc, owner)
	assert.Equal(t, owner, filter["user"])
	assert.Equal(t, doc, filter["_id"])
	assert.NotEqual(t, stranger, filter["user"])

	pFilter := projectOwnerFilter(doc, owner)
	assert.Equal(t, owner, pFilter["userId"])
	assert.Equal(t, doc, pFilter["_id"])
}
