package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all runtime configuration, populated from the environment.
type Config struct {
	Port                    string `envconfig:"PORT" default:"8080"`
	Env                     string `envconfig:"ENV" default:"development"`
	LogLevel                string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat               string `envconfig:"LOG_FORMAT" default:"json"`
	MongoURI                string `envconfig:"MONGO_URI" required:"true"`
	MongoDatabase           string `envconfig:"MONGO_DATABASE" default:"blogify"`
	FirebaseCredentialsPath string `envconfig:"FIREBASE_CREDENTIALS_PATH" default:"./firebase_credentials.json"`
	MediaBaseURL            string `envconfig:"MEDIA_BASE_URL" default:""`
	MediaAPIKey             string `envconfig:"MEDIA_API_KEY" default:""`
}

// Load reads configuration from a .env file (if present) and the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set.")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}
	return &cfg, nil
}
