package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Project struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Category    string             `bson:"category" json:"category"`
	Status      string             `bson:"status" json:"status"`
	StartDate   *time.Time         `bson:"startDate" json:"startDate"`
	EndDate     *time.Time         `bson:"endDate" json:"endDate"`
	Thumbnail   string             `bson:"thumbnail" json:"thumbnail"`
	GithubLink  string             `bson:"githubLink" json:"githubLink"`
	LiveLink    string             `bson:"liveLink" json:"liveLink"`
	Owner       string             `bson:"owner" json:"owner"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

var (
	ProjectCategories = []string{"Web App", "Mobile", "ML", "Blockchain", "Desktop", "Other"}
	ProjectStatuses   = []string{"Not Started", "In Progress", "Completed", "On Hold"}
)

const (
	DefaultProjectCategory = "Web App"
	DefaultProjectStatus   = "Not Started"
)

// ProjectRequest carries the client payload for create and update.
// Dates arrive as strings ("2006-01-02" or RFC3339) and are parsed
// during validation.
type ProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Status      string `json:"status"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Thumbnail   string `json:"thumbnail"`
	GithubLink  string `json:"githubLink"`
	LiveLink    string `json:"liveLink"`
}

// Normalize fills enum defaults for an unset category or status.
func (p *Project) Normalize() {
	if p.Category == "" {
		p.Category = DefaultProjectCategory
	}
	if p.Status == "" {
		p.Status = DefaultProjectStatus
	}
}
