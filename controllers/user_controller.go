package controllers

import (
	"TaskNest/models"
	"TaskNest/services"
	"TaskNest/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *services.UserService
}

func NewUserController() *UserController {
	return &UserController{
		UserService: services.NewUserService(),
	}
}

// GetProfile returns the caller's profile without the password hash.
func (h *UserController) GetProfile(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	user, err := h.UserService.GetProfile(ctx.Request.Context(), userID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// validateProfileUpdate checks only the fields the client sent; a payload
// carrying just name and email is a valid patch.
func validateProfileUpdate(req models.UpdateProfileRequest) *utils.CustomError {
	v := utils.NewValidator()
	if req.Name != nil {
		v.Required(*req.Name, "Name")
		v.MaxLength(*req.Name, "Name", 100)
	}
	if req.Email != nil {
		v.Email(services.NormalizeEmail(*req.Email))
	}
	if req.Gender != nil {
		v.OneOf(*req.Gender, "gender", models.GenderValues)
	}
	if req.WorkStatus != nil {
		v.OneOf(*req.WorkStatus, "work status", models.WorkStatusValues)
	}
	return v.Err()
}

// UpdateProfile patches the profile attributes.
func (h *UserController) UpdateProfile(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req models.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validateProfileUpdate(req); err != nil {
		utils.ErrorResponse(ctx, err.StatusCode, err.Message)
		return
	}

	user, err := h.UserService.UpdateProfile(ctx.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// ChangePassword verifies the current password before swapping the hash.
func (h *UserController) ChangePassword(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req models.ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.CurrentPassword == "" || req.NewPassword == "" {
		utils.ErrorResponse(ctx, http.StatusBadRequest, "Current and new passwords are required")
		return
	}
	v := utils.NewValidator()
	v.Password(req.NewPassword, "New password")
	if err := v.Err(); err != nil {
		utils.ErrorResponse(ctx, err.StatusCode, err.Message)
		return
	}

	if err := h.UserService.ChangePassword(ctx.Request.Context(), userID, req); err != nil {
		respondServiceError(ctx, err)
		return
	}
	utils.MessageResponse(ctx, http.StatusOK, "Password changed successfully")
}

// UpdateTheme persists the light/dark preference.
func (h *UserController) UpdateTheme(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req models.UpdateThemeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	v := utils.NewValidator()
	v.OneOf(req.Theme, "theme", models.ThemeValues)
	if err := v.Err(); err != nil {
		utils.ErrorResponse(ctx, err.StatusCode, err.Message)
		return
	}

	user, err := h.UserService.UpdateTheme(ctx.Request.Context(), userID, req.Theme)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// DeleteAccount removes the account after a password check.
func (h *UserController) DeleteAccount(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req models.DeleteAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Password == "" {
		utils.ErrorResponse(ctx, http.StatusBadRequest, "Password is required to delete account")
		return
	}

	if err := h.UserService.DeleteAccount(ctx.Request.Context(), userID, req.Password); err != nil {
		respondServiceError(ctx, err)
		return
	}
	utils.MessageResponse(ctx, http.StatusOK, "Account deleted successfully")
}
