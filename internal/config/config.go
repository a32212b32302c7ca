package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	Session struct {
		CookieName string `yaml:"cookie_name"`
		TTLHours   int    `yaml:"ttl_hours"`
	} `yaml:"session"`

	Storage struct {
		Type      string `yaml:"type"`       // local, s3
		BasePath  string `yaml:"base_path"`  // For local storage
		BaseURL   string `yaml:"base_url"`   // Public URL base
		Bucket    string `yaml:"bucket"`     // For S3
		Region    string `yaml:"region"`     // For S3
		AccessKey string `yaml:"access_key"` // For S3
		SecretKey string `yaml:"secret_key"` // For S3
		Endpoint  string `yaml:"endpoint"`   // For S3-compatible stores
		UseSSL    bool   `yaml:"use_ssl"`    // For S3
	} `yaml:"storage"`

	Upload struct {
		MaxSize              int64    `yaml:"max_size"`              // Max media file size in bytes
		AllowedTypes         []string `yaml:"allowed_types"`         // Allowed MIME types for media
		AttachmentMaxSize    int64    `yaml:"attachment_max_size"`   // Max enquiry attachment size
		AttachmentExtensions []string `yaml:"attachment_extensions"` // Allowed enquiry attachment extensions
	} `yaml:"upload"`

	Admin struct {
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		FullName string `yaml:"full_name"`
	} `yaml:"admin"`
}

var AppConfig *Config

// LoadConfig reads configuration from config.yaml, or from environment
// variables when DATABASE_URL is set (test and container deployments).
func LoadConfig() {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		AppConfig = &cfg
		applyDefaults(AppConfig)
		return
	}

	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.Admin.Username = os.Getenv("ADMIN_USERNAME")
	cfg.Admin.Password = os.Getenv("ADMIN_PASSWORD")
	cfg.Admin.FullName = os.Getenv("ADMIN_FULL_NAME")
	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = "./uploads"
	cfg.Storage.BaseURL = "uploads"

	AppConfig = &cfg
	applyDefaults(AppConfig)
}

// applyDefaults fills the knobs that have sensible fixed values so that a
// minimal config file stays minimal.
func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = "vv_admin_session"
	}
	if cfg.Session.TTLHours == 0 {
		cfg.Session.TTLHours = 24
	}
	if cfg.Storage.Type == "" {
		cfg.Storage.Type = "local"
	}
	if cfg.Storage.BasePath == "" {
		cfg.Storage.BasePath = "./uploads"
	}
	if cfg.Storage.BaseURL == "" {
		cfg.Storage.BaseURL = "uploads"
	}
	if cfg.Upload.MaxSize == 0 {
		cfg.Upload.MaxSize = 50 * 1024 * 1024 // 50MB, carousel videos included
	}
	if len(cfg.Upload.AllowedTypes) == 0 {
		cfg.Upload.AllowedTypes = []string{
			"image/jpeg", "image/png", "image/gif", "image/webp",
			"video/mp4", "video/webm",
		}
	}
	if cfg.Upload.AttachmentMaxSize == 0 {
		cfg.Upload.AttachmentMaxSize = 10 * 1024 * 1024 // 10MB
	}
	if len(cfg.Upload.AttachmentExtensions) == 0 {
		cfg.Upload.AttachmentExtensions = []string{
			"jpg", "jpeg", "png", "pdf", "doc", "docx", "psd", "ai", "zip",
		}
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
