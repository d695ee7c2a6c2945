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

type ProjectService struct {
	ProjectCollection *mongo.Collection
}

// NewProjectService initializes ProjectService with the projects collection
func NewProjectService() *ProjectService {
	return &ProjectService{
		ProjectCollection: database.GetCollection("projects"),
	}
}

func projectOwnerFilter(projectID, userID primitive.ObjectID) bson.M {
	return bson.M{"_id": projectID, "userId": userID}
}

// GetAllProjects retrieves the caller's projects, most recently updated first.
func (s *ProjectService) GetAllProjects(ctx context.Context, userID primitive.ObjectID) ([]models.Project, error) {
	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	cursor, err := s.ProjectCollection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		log.Printf("Error fetching projects for %s: %v", userID.Hex(), err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch projects")
	}
	defer cursor.Close(ctx)

	projects := []models.Project{}
	if err := cursor.All(ctx, &projects); err != nil {
		log.Printf("Error decoding projects: %v", err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch projects")
	}
	return projects, nil
}

// GetProjectByID retrieves one project, scoped to the caller.
func (s *ProjectService) GetProjectByID(ctx context.Context, userID, projectID primitive.ObjectID) (*models.Project, error) {
	var project models.Project
	err := s.ProjectCollection.FindOne(ctx, projectOwnerFilter(projectID, userID)).Decode(&project)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewCustomError(http.StatusNotFound, "Project not found")
		}
		log.Printf("Error fetching project %s: %v", projectID.Hex(), err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch project")
	}
	return &project, nil
}

// CreateProject inserts a project for the caller. The owner display name
// comes from the token, never from the request body.
func (s *ProjectService) CreateProject(ctx context.Context, userID primitive.ObjectID, ownerName string, req models.ProjectRequest, startDate, endDate *time.Time) (*models.Project, error) {
	if ownerName == "" {
		ownerName = "Unknown"
	}
	now := time.Now()
	project := models.Project{
		UserID:      userID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Category:    req.Category,
		Status:      req.Status,
		StartDate:   startDate,
		EndDate:     endDate,
		Thumbnail:   req.Thumbnail,
		GithubLink:  req.GithubLink,
		LiveLink:    req.LiveLink,
		Owner:       ownerName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	project.Normalize()

	result, err := s.ProjectCollection.InsertOne(ctx, project)
	if err != nil {
		log.Printf("Error creating project: %v", err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to create project")
	}
	project.ID = result.InsertedID.(primitive.ObjectID)
	return &project, nil
}

// UpdateProject rewrites the project fields, scoped to the caller.
func (s *ProjectService) UpdateProject(ctx context.Context, userID, projectID primitive.ObjectID, req models.ProjectRequest, startDate, endDate *time.Time) (*models.Project, error) {
	category := req.Category
	if category == "" {
		category = models.DefaultProjectCategory
	}
	status := req.Status
	if status == "" {
		status = models.DefaultProjectStatus
	}

	update := bson.M{"$set": bson.M{
		"name":        strings.TrimSpace(req.Name),
		"description": req.Description,
		"category":    category,
		"status":      status,
		"startDate":   startDate,
		"endDate":     endDate,
		"thumbnail":   req.Thumbnail,
		"githubLink":  req.GithubLink,
		"liveLink":    req.LiveLink,
		"updatedAt":   time.Now(),
	}}

	var project models.Project
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := s.ProjectCollection.FindOneAndUpdate(ctx, projectOwnerFilter(projectID, userID), update, opts).Decode(&project)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewCustomError(http.StatusNotFound, "Project not found")
		}
		log.Printf("Error updating project %s: %v", projectID.Hex(), err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to update project")
	}
	return &project, nil
}

// DeleteProject removes a project, scoped to the caller.
func (s *ProjectService) DeleteProject(ctx context.Context, userID, projectID primitive.ObjectID) error {
	result, err := s.ProjectCollection.DeleteOne(ctx, projectOwnerFilter(projectID, userID))
	if err != nil {
		log.Printf("Error deleting project %s: %v", projectID.Hex(), err)
		return utils.NewCustomError(http.StatusInternalServerError, "Failed to delete project")
	}
	if result.DeletedCount == 0 {
		return utils.NewCustomError(http.StatusNotFound, "Project not found")
	}
	return nil
}
