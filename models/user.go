package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type User struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name          string             `bson:"name" json:"name"`
	Email         string             `bson:"email" json:"email"`
	Password      string             `bson:"password" json:"-"` // bcrypt hash, never sent to the client
	ProfileImage  string             `bson:"profileImage" json:"profileImage"`
	CoverPhoto    string             `bson:"coverPhoto" json:"coverPhoto"`
	Gender        string             `bson:"gender" json:"gender"`
	MobileNumber  string             `bson:"mobileNumber" json:"mobileNumber"`
	Address       string             `bson:"address" json:"address"`
	Qualification string             `bson:"qualification" json:"qualification"`
	WorkStatus    string             `bson:"workStatus" json:"workStatus"`
	Theme         string             `bson:"theme" json:"theme"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

var (
	GenderValues     = []string{"male", "female", "other", ""}
	WorkStatusValues = []string{"student", "working", "both", ""}
	ThemeValues      = []string{"light", "dark"}
)

// HashPassword returns the bcrypt hash of a plaintext password.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// ComparePassword reports whether plaintext matches the stored hash.
func (u *User) ComparePassword(plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plaintext)) == nil
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest carries a profile patch. The fields are pointers so
// a client sending only name and email leaves the rest of the profile
// untouched.
type UpdateProfileRequest struct {
	Name          *string `json:"name"`
	Email         *string `json:"email"`
	ProfileImage  *string `json:"profileImage"`
	CoverPhoto    *string `json:"coverPhoto"`
	Gender        *string `json:"gender"`
	MobileNumber  *string `json:"mobileNumber"`
	Address       *string `json:"address"`
	Qualification *string `json:"qualification"`
	WorkStatus    *string `json:"workStatus"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type UpdateThemeRequest struct {
	Theme string `json:"theme"`
}

type DeleteAccountRequest struct {
	Password string `json:"password"`
}
