package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
)

type Config struct {
	Port            string
	MongoURI        string
	DatabaseName    string
	SecretToken     string
	StripeSecretKey string
}

// Load reads configuration from the environment. Missing secrets are a
// startup error, never a silent fallback.
func Load() (Config, error) {
	cfg := Config{
		Port:         getEnv("PORT", "5000"),
		DatabaseName: getEnv("DB_NAME", "summerCampDB"),
	}

	cfg.SecretToken = os.Getenv("SECRET_TOKEN")
	if cfg.SecretToken == "" {
		return Config{}, errors.New("SECRET_TOKEN is required")
	}

	cfg.StripeSecretKey = os.Getenv("STRIPE_SECRET_KEY")
	if cfg.StripeSecretKey == "" {
		return Config{}, errors.New("STRIPE_SECRET_KEY is required")
	}

	cfg.MongoURI = os.Getenv("MONGO_URI")
	if cfg.MongoURI == "" {
		user := os.Getenv("DB_USER")
		pass := os.Getenv("DB_PASS")
		if user == "" || pass == "" {
			return Config{}, errors.New("MONGO_URI or DB_USER/DB_PASS is required")
		}
		cfg.MongoURI = fmt.Sprintf(
			"mongodb+srv://%s:%s@cluster0.ccknyay.mongodb.net/?retryWrites=true&w=majority",
			url.QueryEscape(user), url.QueryEscape(pass),
		)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
