package controllers

import (
	"TaskNest/models"
	"TaskNest/services"
	"TaskNest/utils"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type ProjectController struct {
	ProjectService *services.ProjectService
}

func NewProjectController() *ProjectController {
	return &ProjectController{
		ProjectService: services.NewProjectService(),
	}
}

// validateProject runs the shared checks on a project payload and parses
// the optional dates.
func validateProject(req models.ProjectRequest) (startDate, endDate *time.Time, err *utils.CustomError) {
	v := utils.NewValidator()
	v.Required(req.Name, "Project name")
	v.MaxLength(req.Name, "Project name", 200)
	if req.Category != "" {
		v.OneOf(req.Category, "category", models.ProjectCategories)
	}
	if req.Status != "" {
		v.OneOf(req.Status, "status", models.ProjectStatuses)
	}
	startDate = v.Date(req.StartDate, "start date")
	endDate = v.Date(req.EndDate, "end date")
	v.DateOrder(startDate, endDate)
	return startDate, endDate, v.Err()
}

// GetProjects lists the caller's projects, most recently updated first.
func (h *ProjectController) GetProjects(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	projects, err := h.ProjectService.GetAllProjects(ctx.Request.Context(), userID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, projects)
}

// GetProject fetches one project by id.
func (h *ProjectController) GetProject(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	projectID, ok := pathObjectID(ctx, "Project not found")
	if !ok {
		return
	}

	project, err := h.ProjectService.GetProjectByID(ctx.Request.Context(), userID, projectID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, project)
}

// CreateProject adds a project and answers 201.
func (h *ProjectController) CreateProject(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req models.ProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	startDate, endDate, vErr := validateProject(req)
	if vErr != nil {
		utils.ErrorResponse(ctx, vErr.StatusCode, vErr.Message)
		return
	}

	project, err := h.ProjectService.CreateProject(ctx.Request.Context(), userID, currentUserName(ctx), req, startDate, endDate)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, project)
}

// UpdateProject rewrites a project.
func (h *ProjectController) UpdateProject(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	projectID, ok := pathObjectID(ctx, "Project not found")
	if !ok {
		return
	}

	var req models.ProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	startDate, endDate, vErr := validateProject(req)
	if vErr != nil {
		utils.ErrorResponse(ctx, vErr.StatusCode, vErr.Message)
		return
	}

	project, err := h.ProjectService.UpdateProject(ctx.Request.Context(), userID, projectID, req, startDate, endDate)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, project)
}

// DeleteProject removes a project.
func (h *ProjectController) DeleteProject(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	projectID, ok := pathObjectID(ctx, "Project not found")
	if !ok {
		return
	}

	if err := h.ProjectService.DeleteProject(ctx.Request.Context(), userID, projectID); err != nil {
		respondServiceError(ctx, err)
		return
	}
	utils.MessageResponse(ctx, http.StatusOK, "Project deleted successfully")
}
