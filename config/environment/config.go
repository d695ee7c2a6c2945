package environment

import (
	"os"
	"strconv"
	"strings"
)

func GetMongoURI() string {
	return os.Getenv("MONGO_URI")
}

func GetMongoDatabase() string {
	name := os.Getenv("MONGO_DB")
	if name == "" {
		name = "tasknest"
	}
	return name
}

func GetPort() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return port
}

func GetJWTSecret() string {
	return os.Getenv("JWT_SECRET")
}

// GetJWTTTLHours returns the token lifetime in hours, 168 (7 days) when unset.
func GetJWTTTLHours() int {
	ttl, err := strconv.Atoi(os.Getenv("JWT_TTL_HOURS"))
	if err != nil || ttl <= 0 {
		return 168
	}
	return ttl
}

// GetAllowedOrigins returns the comma separated ALLOWED_ORIGINS list,
// falling back to a wildcard for local development.
func GetAllowedOrigins() []string {
	raw := os.Getenv("ALLOWED_ORIGINS")
	if raw == "" {
		return []string{"*"}
	}
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func GetAppEnv() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}
	return env
}
