package controllers

import (
	"TaskNest/middleware"
	"TaskNest/utils"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// currentUserID reads the identity the auth middleware attached. Handlers
// scope every query by this value and never by an id from the body.
func currentUserID(ctx *gin.Context) (primitive.ObjectID, bool) {
	raw, exists := ctx.Get(middleware.UserIDKey)
	if !exists {
		utils.ErrorResponse(ctx, http.StatusUnauthorized, "Authorization token required")
		return primitive.NilObjectID, false
	}
	userID, err := primitive.ObjectIDFromHex(raw.(string))
	if err != nil {
		utils.ErrorResponse(ctx, http.StatusUnauthorized, "Invalid token")
		return primitive.NilObjectID, false
	}
	return userID, true
}

func currentUserName(ctx *gin.Context) string {
	name, _ := ctx.Get(middleware.UserNameKey)
	s, _ := name.(string)
	return s
}

// pathObjectID parses the :id route parameter. A malformed id cannot match
// any document, so it answers the same 404 as a missing one.
func pathObjectID(ctx *gin.Context, notFoundMessage string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		utils.ErrorResponse(ctx, http.StatusNotFound, notFoundMessage)
		return primitive.NilObjectID, false
	}
	return id, true
}
