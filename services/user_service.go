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

type UserService struct {
	UserCollection    *mongo.Collection
	TaskCollection    *mongo.Collection
	ProjectCollection *mongo.Collection
}

// NewUserService initializes UserService with its collections
func NewUserService() *UserService {
	return &UserService{
		UserCollection:    database.GetCollection("users"),
		TaskCollection:    database.GetCollection("tasks"),
		ProjectCollection: database.GetCollection("projects"),
	}
}

func (s *UserService) findByID(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := s.UserCollection.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewCustomError(http.StatusNotFound, "User not found")
		}
		log.Printf("Error fetching user %s: %v", userID.Hex(), err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to fetch user profile")
	}
	return &user, nil
}

// GetProfile returns the caller's user document.
func (s *UserService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	return s.findByID(ctx, userID)
}

// profileUpdateSet builds the patch document. Only fields present in the
// request are written, so a name/email edit cannot wipe the other
// attributes.
func profileUpdateSet(req models.UpdateProfileRequest) bson.M {
	set := bson.M{"updatedAt": time.Now()}
	if req.Name != nil {
		set["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		set["email"] = NormalizeEmail(*req.Email)
	}
	if req.ProfileImage != nil {
		set["profileImage"] = *req.ProfileImage
	}
	if req.CoverPhoto != nil {
		set["coverPhoto"] = *req.CoverPhoto
	}
	if req.Gender != nil {
		set["gender"] = *req.Gender
	}
	if req.MobileNumber != nil {
		set["mobileNumber"] = *req.MobileNumber
	}
	if req.Address != nil {
		set["address"] = *req.Address
	}
	if req.Qualification != nil {
		set["qualification"] = *req.Qualification
	}
	if req.WorkStatus != nil {
		set["workStatus"] = *req.WorkStatus
	}
	return set
}

// UpdateProfile patches the profile attributes, never the password.
func (s *UserService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, req models.UpdateProfileRequest) (*models.User, error) {
	if req.Email != nil {
		// The email stays unique across every other account.
		email := NormalizeEmail(*req.Email)
		count, err := s.UserCollection.CountDocuments(ctx, bson.M{"email": email, "_id": bson.M{"$ne": userID}})
		if err != nil {
			log.Printf("Error checking email uniqueness: %v", err)
			return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to update profile")
		}
		if count > 0 {
			return nil, utils.NewCustomError(http.StatusConflict, "Email already registered")
		}
	}

	update := bson.M{"$set": profileUpdateSet(req)}

	var user models.User
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := s.UserCollection.FindOneAndUpdate(ctx, bson.M{"_id": userID}, update, opts).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewCustomError(http.StatusNotFound, "User not found")
		}
		log.Printf("Error updating profile for %s: %v", userID.Hex(), err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to update profile")
	}
	return &user, nil
}

// ChangePassword swaps the stored hash after verifying the current password.
func (s *UserService) ChangePassword(ctx context.Context, userID primitive.ObjectID, req models.ChangePasswordRequest) error {
	user, err := s.findByID(ctx, userID)
	if err != nil {
		return err
	}

	if !user.ComparePassword(req.CurrentPassword) {
		return utils.NewCustomError(http.StatusBadRequest, "Current password is incorrect")
	}

	hash, err := models.HashPassword(req.NewPassword)
	if err != nil {
		log.Printf("Error hashing new password: %v", err)
		return utils.NewCustomError(http.StatusInternalServerError, "Failed to change password")
	}

	_, err = s.UserCollection.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$set": bson.M{
		"password":  hash,
		"updatedAt": time.Now(),
	}})
	if err != nil {
		log.Printf("Error updating password for %s: %v", userID.Hex(), err)
		return utils.NewCustomError(http.StatusInternalServerError, "Failed to change password")
	}
	return nil
}

// UpdateTheme persists the light/dark preference.
func (s *UserService) UpdateTheme(ctx context.Context, userID primitive.ObjectID, theme string) (*models.User, error) {
	var user models.User
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := s.UserCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"theme": theme, "updatedAt": time.Now()}},
		opts,
	).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewCustomError(http.StatusNotFound, "User not found")
		}
		log.Printf("Error updating theme for %s: %v", userID.Hex(), err)
		return nil, utils.NewCustomError(http.StatusInternalServerError, "Failed to update theme")
	}
	return &user, nil
}

// DeleteAccount removes the user after a password check, cascading over the
// user's tasks and projects first. The cascade is best effort, not a
// transaction; a failure here leaves the account in place.
func (s *UserService) DeleteAccount(ctx context.Context, userID primitive.ObjectID, password string) error {
	user, err := s.findByID(ctx, userID)
	if err != nil {
		return err
	}

	if !user.ComparePassword(password) {
		return utils.NewCustomError(http.StatusBadRequest, "Password is incorrect")
	}

	if _, err := s.TaskCollection.DeleteMany(ctx, bson.M{"user": userID}); err != nil {
		log.Printf("Error deleting tasks for %s: %v", userID.Hex(), err)
		return utils.NewCustomError(http.StatusInternalServerError, "Failed to delete account")
	}
	if _, err := s.ProjectCollection.DeleteMany(ctx, bson.M{"userId": userID}); err != nil {
		log.Printf("Error deleting projects for %s: %v", userID.Hex(), err)
		return utils.NewCustomError(http.StatusInternalServerError, "Failed to delete account")
	}

	if _, err := s.UserCollection.DeleteOne(ctx, bson.M{"_id": userID}); err != nil {
		log.Printf("Error deleting user %s: %v", userID.Hex(), err)
		return utils.NewCustomError(http.StatusInternalServerError, "Failed to delete account")
	}
	return nil
}
