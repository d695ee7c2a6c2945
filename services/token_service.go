package services

import (
	"TaskNest/config/environment"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verification failures are split so the middleware can log an expired
// token differently from a tampered or malformed one.
var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("token is invalid")
)

type TokenService struct {
	secretKey []byte
	ttl       time.Duration
}

func NewTokenService() *TokenService {
	secret := environment.GetJWTSecret()
	if secret == "" {
		log.Fatal("JWT_SECRET environment variable is missing")
	}
	return &TokenService{
		secretKey: []byte(secret),
		ttl:       time.Duration(environment.GetJWTTTLHours()) * time.Hour,
	}
}

// NewTokenServiceWith builds a TokenService with explicit settings.
func NewTokenServiceWith(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secretKey: []byte(secret), ttl: ttl}
}

// Issue signs a token asserting the user's identity until the expiry.
func (t *TokenService) Issue(userID string, name string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"name":    name,
		"exp":     time.Now().Add(t.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secretKey)
}

// Verify parses and validates a token, returning the embedded user id and
// display name. Expired tokens yield ErrTokenExpired; every other failure
// yields ErrTokenInvalid.
func (t *TokenService) Verify(tokenStr string) (string, string, error) {
	token, err := jwt.Parse(tokenStr, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", tok.Header["alg"])
		}
		return t.secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", ErrTokenExpired
		}
		return "", "", ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", ErrTokenInvalid
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", ErrTokenInvalid
	}
	name, _ := claims["name"].(string)
	return userID, name, nil
}
