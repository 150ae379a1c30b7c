package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	CORS     CORSConfig
	Log      LogConfig
}

type AppConfig struct {
	Name       string
	Port       string
	Debug      bool
	UploadsDir string
}

// LogConfig controls the rotated log file
type LogConfig struct {
	Service    string
	Dir        string
	FileName   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// DatabaseConfig holds both document stores. The commerce store keeps users
// and banners, the AI store keeps crops, images and notifications.
type DatabaseConfig struct {
	CommerceURI    string
	CommerceName   string
	AIURI          string
	AIName         string
	ConnectTimeout time.Duration
}

type JWTConfig struct {
	Secret string
	Expiry time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

func LoadConfig() (*Config, error) {
	return LoadConfigFrom(".env")
}

// LoadConfigFrom reads an env file (optional) and overlays process environment.
func LoadConfigFrom(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "agro-marketplace")
	v.SetDefault("PORT", "5000")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("LOG_FILE", "agro-marketplace.log")
	v.SetDefault("LOG_MAX_SIZE_MB", 20)
	v.SetDefault("LOG_MAX_BACKUPS", 5)
	v.SetDefault("LOG_MAX_AGE_DAYS", 14)
	v.SetDefault("UPLOADS_DIR", "uploads")
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGODB_URI_AGROAI", "")
	v.SetDefault("COMMERCE_DB_NAME", "agrocommerce")
	v.SetDefault("AI_DB_NAME", "agroai")
	v.SetDefault("DB_CONNECT_TIMEOUT_SECONDS", 10)
	v.SetDefault("JWT_SECRET_KEY", "")
	v.SetDefault("JWT_ACCESS_TOKEN_EXPIRES", 86400)
	v.SetDefault("CORS_ORIGINS", "http://localhost:19006")

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	v.AutomaticEnv()

	aiURI := v.GetString("MONGODB_URI_AGROAI")
	if aiURI == "" {
		aiURI = v.GetString("MONGO_URI")
	}

	config := &Config{
		App: AppConfig{
			Name:       v.GetString("APP_NAME"),
			Port:       v.GetString("PORT"),
			Debug:      v.GetBool("DEBUG"),
			UploadsDir: v.GetString("UPLOADS_DIR"),
		},
		Log: LogConfig{
			Service:    v.GetString("APP_NAME"),
			Dir:        v.GetString("LOG_PATH"),
			FileName:   v.GetString("LOG_FILE"),
			MaxSizeMB:  v.GetInt("LOG_MAX_SIZE_MB"),
			MaxBackups: v.GetInt("LOG_MAX_BACKUPS"),
			MaxAgeDays: v.GetInt("LOG_MAX_AGE_DAYS"),
		},
		Database: DatabaseConfig{
			CommerceURI:    v.GetString("MONGO_URI"),
			CommerceName:   v.GetString("COMMERCE_DB_NAME"),
			AIURI:          aiURI,
			AIName:         v.GetString("AI_DB_NAME"),
			ConnectTimeout: time.Duration(v.GetInt("DB_CONNECT_TIMEOUT_SECONDS")) * time.Second,
		},
		JWT: JWTConfig{
			Secret: v.GetString("JWT_SECRET_KEY"),
			Expiry: time.Duration(v.GetInt("JWT_ACCESS_TOKEN_EXPIRES")) * time.Second,
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ORIGINS")),
		},
	}

	if config.JWT.Secret == "" {
		return nil, errors.New("JWT_SECRET_KEY is required")
	}

	return config, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
