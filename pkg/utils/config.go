package utils

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

// Config is loaded once at startup and passed into constructors;
// it is never mutated afterwards.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
	TMDb     TMDbConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	// URL connects as the restricted role; row-level policies apply.
	URL string
	// AdminURL connects as the privileged role used by the seeder.
	AdminURL string
	MaxConns int32
}

type AuthConfig struct {
	// Base URL of the auth platform, e.g. https://xyz.example.co
	URL string
	// AnonKey is the public API key sent alongside user tokens.
	AnonKey string
}

type TMDbConfig struct {
	APIKey   string
	BaseURL  string
	Language string
	// RPS bounds outbound catalog requests; 0 disables the limiter.
	RPS float64
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "movie-swiper")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("TMDB_BASE_URL", "https://api.themoviedb.org/3")
	viper.SetDefault("TMDB_LANGUAGE", "en-US")
	viper.SetDefault("TMDB_RPS", 0)

	if err := viper.ReadInConfig(); err != nil {
		// Running without a .env file is fine, env vars still apply
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			URL:      viper.GetString("DATABASE_URL"),
			AdminURL: viper.GetString("DATABASE_ADMIN_URL"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Auth: AuthConfig{
			URL:     viper.GetString("AUTH_URL"),
			AnonKey: viper.GetString("AUTH_ANON_KEY"),
		},
		TMDb: TMDbConfig{
			APIKey:   viper.GetString("TMDB_API_KEY"),
			BaseURL:  viper.GetString("TMDB_BASE_URL"),
			Language: viper.GetString("TMDB_LANGUAGE"),
			RPS:      viper.GetFloat64("TMDB_RPS"),
		},
	}

	return config, nil
}
