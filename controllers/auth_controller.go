package controllers

import (
	"TaskNest/models"
	"TaskNest/services"
	"TaskNest/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *services.AuthService
}

func NewAuthController() *AuthController {
	return &AuthController{
		AuthService: services.NewAuthService(),
	}
}

// RegisterUser creates an account and answers 201 with a signed token.
func (h *AuthController) RegisterUser(ctx *gin.Context) {
	var req models.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	v := utils.NewValidator()
	v.Required(req.Name, "Name")
	v.MaxLength(req.Name, "Name", 100)
	v.Email(services.NormalizeEmail(req.Email))
	v.Password(req.Password, "Password")
	if err := v.Err(); err != nil {
		utils.ErrorResponse(ctx, err.StatusCode, err.Message)
		return
	}

	user, token, err := h.AuthService.Register(ctx.Request.Context(), req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user":  user,
	})
}

// LoginUser verifies credentials and answers 200 with a fresh token.
func (h *AuthController) LoginUser(ctx *gin.Context) {
	var req models.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	v := utils.NewValidator()
	v.Required(req.Email, "Email")
	v.Required(req.Password, "Password")
	if err := v.Err(); err != nil {
		utils.ErrorResponse(ctx, err.StatusCode, err.Message)
		return
	}

	user, token, err := h.AuthService.Login(ctx.Request.Context(), req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}

// respondServiceError maps a service failure onto the error body, keeping
// unknown errors generic.
func respondServiceError(ctx *gin.Context, err error) {
	if customErr, ok := err.(*utils.CustomError); ok {
		utils.ErrorResponse(ctx, customErr.StatusCode, customErr.Message)
		return
	}
	utils.ErrorResponse(ctx, http.StatusInternalServerError, "Internal Server Error")
}
