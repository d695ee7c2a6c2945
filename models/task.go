package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Task struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID    primitive.ObjectID `bson:"user" json:"user"`
	Title     string             `bson:"title" json:"title"`
	Completed bool               `bson:"completed" json:"completed"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// TaskRequest carries the client payload for create and update. The fields
// are pointers so an update can send just the title or just the completion
// flag and leave the other untouched.
type TaskRequest struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}
