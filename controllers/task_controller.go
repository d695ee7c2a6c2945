package controllers

import (
	"TaskNest/models"
	"TaskNest/services"
	"TaskNest/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type TaskController struct {
	TaskService *services.TaskService
}

func NewTaskController() *TaskController {
	return &TaskController{
		TaskService: services.NewTaskService(),
	}
}

// validateTaskUpdate checks only the fields the client sent; a payload
// carrying just the completion flag is a valid patch.
func validateTaskUpdate(req models.TaskRequest) *utils.CustomError {
	v := utils.NewValidator()
	if req.Title != nil {
		v.Required(*req.Title, "Title")
		v.MaxLength(*req.Title, "Title", 200)
	}
	return v.Err()
}

// GetTasks lists the caller's tasks.
func (h *TaskController) GetTasks(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	tasks, err := h.TaskService.GetAllTasks(ctx.Request.Context(), userID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, tasks)
}

// CreateTask adds a task for the caller.
func (h *TaskController) CreateTask(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req models.TaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	title := ""
	if req.Title != nil {
		title = *req.Title
	}
	v := utils.NewValidator()
	v.Required(title, "Title")
	v.MaxLength(title, "Title", 200)
	if err := v.Err(); err != nil {
		utils.ErrorResponse(ctx, err.StatusCode, err.Message)
		return
	}

	task, err := h.TaskService.CreateTask(ctx.Request.Context(), userID, title)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, task)
}

// UpdateTask patches a task's title and/or completion flag. The title is
// validated only when the client sent one.
func (h *TaskController) UpdateTask(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	taskID, ok := pathObjectID(ctx, "Task not found")
	if !ok {
		return
	}

	var req models.TaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validateTaskUpdate(req); err != nil {
		utils.ErrorResponse(ctx, err.StatusCode, err.Message)
		return
	}

	task, err := h.TaskService.UpdateTask(ctx.Request.Context(), userID, taskID, req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, task)
}

// DeleteTask removes a task.
func (h *TaskController) DeleteTask(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	taskID, ok := pathObjectID(ctx, "Task not found")
	if !ok {
		return
	}

	if err := h.TaskService.DeleteTask(ctx.Request.Context(), userID, taskID); err != nil {
		respondServiceError(ctx, err)
		return
	}
	utils.MessageResponse(ctx, http.StatusOK, "Task deleted")
}
