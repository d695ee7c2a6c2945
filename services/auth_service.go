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
)

type AuthService struct {
	UserCollection *mongo.Collection
	TokenService   *TokenService
}

// NewAuthService initializes AuthService with the users collection
func NewAuthService() *AuthService {
	return &AuthService{
		UserCollection: database.GetCollection("users"),
		TokenService:   NewTokenService(),
	}
}

// NormalizeEmail fixes the case policy: emails compare case-insensitively.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a user and returns it with a signed token.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, string, error) {
	email := NormalizeEmail(req.Email)

	count, err := s.UserCollection.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		log.Printf("Error checking existing email: %v", err)
		return nil, "", utils.NewCustomError(http.StatusInternalServerError, "Failed to register user")
	}
	if count > 0 {
		return nil, "", utils.NewCustomError(http.StatusConflict, "Email already registered")
	}

	hash, err := models.HashPassword(req.Password)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return nil, "", utils.NewCustomError(http.StatusInternalServerError, "Failed to register user")
	}

	now := time.Now()
	user := models.User{
		Name:      strings.TrimSpace(req.Name),
		Email:     email,
		Password:  hash,
		Theme:     "light",
		CreatedAt: now,
		UpdatedAt: now,
	}

	result, err := s.UserCollection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, "", utils.NewCustomError(http.StatusConflict, "Email already registered")
		}
		log.Printf("Error inserting user: %v", err)
		return nil, "", utils.NewCustomError(http.StatusInternalServerError, "Failed to register user")
	}
	user.ID = result.InsertedID.(primitive.ObjectID)

	token, err := s.TokenService.Issue(user.ID.Hex(), user.Name)
	if err != nil {
		log.Printf("Error signing token: %v", err)
		return nil, "", utils.NewCustomError(http.StatusInternalServerError, "Failed to register user")
	}
	return &user, token, nil
}

// Login verifies credentials and returns the user with a fresh token.
// Unknown email and wrong password share one message so accounts cannot
// be enumerated.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.User, string, error) {
	email := NormalizeEmail(req.Email)

	var user models.User
	err := s.UserCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, "", utils.NewCustomError(http.StatusUnauthorized, "Invalid email or password")
		}
		log.Printf("Error fetching user by email: %v", err)
		return nil, "", utils.NewCustomError(http.StatusInternalServerError, "Failed to log in")
	}

	if !user.ComparePassword(req.Password) {
		return nil, "", utils.NewCustomError(http.StatusUnauthorized, "Invalid email or password")
	}

	token, err := s.TokenService.Issue(user.ID.Hex(), user.Name)
	if err != nil {
		log.Printf("Error signing token: %v", err)
		return nil, "", utils.NewCustomError(http.StatusInternalServerError, "Failed to log in")
	}
	return &user, token, nil
}
