package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	DBDriver    string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	JWTSecret   string
	TokenTTL    time.Duration
	BcryptCost  int
	GinMode     string
	Port        string
	FrontendDir string
}

func Load() *Config {
	return &Config{
		DBDriver:    getEnv("DB_DRIVER", "mysql"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "3306"),
		DBUser:      getEnv("DB_USER", "todouser"),
		DBPassword:  getEnv("DB_PASSWORD", "todopassword"),
		DBName:      getEnv("DB_NAME", "todo_api"),
		JWTSecret:   getEnv("JWT_SECRET", "default-secret-key-change-me"),
		TokenTTL:    time.Duration(getEnvInt("TOKEN_TTL_MINUTES", 30)) * time.Minute,
		BcryptCost:  getEnvInt("BCRYPT_COST", 12),
		GinMode:     getEnv("GIN_MODE", "debug"),
		Port:        getEnv("PORT", "8080"),
		FrontendDir: getEnv("FRONTEND_DIR", ""),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
