package services

import (
	"TaskNest/config/database"
	"TaskNest/models"
	"TaskNest/utils"
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TaskService struct {
	TaskCollection *mongo.Collection
}

// NewTaskService initializes TaskService with the tasks collection
func NewTaskService() *TaskService {
	return &TaskService{
		TaskCollection: database.GetCollection("tasks"),
	}
}

// taskOwnerFilter scopes a by-id operation to the caller. A task owned by
// someone else matches nothing, so it looks identical to a missing one.
func taskOwnerFilter(taskID, userID primitive.ObjectID) bson.M {
	return bson.M{"_id": taskID, "user": userID}
}

// taskUpdateSet builds the patch document. Only fields present in the
// request are written, matching how the clients toggle and rename.
func taskUpdateSet(req models.TaskRequest) bson.M {
	set := bson.M{"updatedAt": time.Now()}
	if req.Title != nil {
		set["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Completed != nil {
		set["completed"] = *req.Completed
	}
	return set
}

// GetAllTasks retrieves every task owned by the caller.
func (s *TaskService) GetAllTasks(ctx context.Context, userID primitive.ObjectID) ([]models.Task, error) {
	cursor, err := s.TaskCollection.Find(ctx, bson.M{"user": userID})
	if err != nil {
		log.Printf("Error fetching tasks for %s: %v", userID.Hex(), err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch tasks")
	}
	defer cursor.Close(ctx)

	tasks := []models.Task{}
	if err := cursor.All(ctx, &tasks); err != nil {
		log.Printf("Error decoding tasks: %v", err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch tasks")
	}
	return tasks, nil
}

// CreateTask inserts a task for the caller.
func (s *TaskService) CreateTask(ctx context.Context, userID primitive.ObjectID, title string) (*models.Task, error) {
	now := time.Now()
	task := models.Task{
		UserID:    userID,
		Title:     strings.TrimSpace(title),
		Completed: false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	result, err := s.TaskCollection.InsertOne(ctx, task)
	if err != nil {
		log.Printf("Error creating task: %v", err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to create task")
	}
	task.ID = result.InsertedID.(primitive.ObjectID)
	return &task, nil
}

// UpdateTask patches a task, scoped to the caller. Fields absent from the
// request stay as they are, so a completion toggle does not touch the title
// and a rename does not reset the flag.
func (s *TaskService) UpdateTask(ctx context.Context, userID, taskID primitive.ObjectID, req models.TaskRequest) (*models.Task, error) {
	update := bson.M{"$set": taskUpdateSet(req)}

	var task models.Task
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := s.TaskCollection.FindOneAndUpdate(ctx, taskOwnerFilter(taskID, userID), update, opts).Decode(&task)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewCustomError(http.StatusNotFound, "Task not found")
		}
		log.Printf("Error updating task %s: %v", taskID.Hex(), err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to update task")
	}
	return &task, nil
}

// DeleteTask removes a task, scoped to the caller.
func (s *TaskService) DeleteTask(ctx context.Context, userID, taskID primitive.ObjectID) error {
	result, err := s.TaskCollection.DeleteOne(ctx, taskOwnerFilter(taskID, userID))
	if err != nil {
		log.Printf("Error deleting task %s: %v", taskID.Hex(), err)
		return utils.NewCustomError(http.StatusInternalServerError, "Failed to delete task")
	}
	if result.DeletedCount == 0 {
		return utils.NewCustomError(http.StatusNotFound, "Task not found")
	}
	return nil
}
