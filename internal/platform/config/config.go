package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	MediaProviderCloudinary = "cloudinary"
	MediaProviderMinIO      = "minio"
)

type Config struct {
	APIURL      string `env:"PAYROLL_API_URL" envDefault:"http://localhost:8080/api"`
	SessionFile string `env:"PAYROLL_SESSION_FILE"`
	SessionKey  string `env:"PAYROLL_SESSION_KEY"`
	LogLevel    string `env:"PAYROLL_LOG_LEVEL" envDefault:"info"`
	Environment string `env:"PAYROLL_ENV" envDefault:"development"`
	PageSize    int    `env:"PAYROLL_PAGE_SIZE" envDefault:"10"`
	Media       MediaOptions
}

type MediaOptions struct {
	Provider         string   `env:"PAYROLL_MEDIA_PROVIDER" envDefault:"cloudinary"`
	CloudinaryCloud  string   `env:"PAYROLL_CLOUDINARY_CLOUD" envDefault:"dhf6btiqm"`
	CloudinaryPreset string   `env:"PAYROLL_CLOUDINARY_PRESET" envDefault:"Payroll_Cloud"`
	CloudinaryURL    string   `env:"PAYROLL_CLOUDINARY_URL"`
	MinIOEndpoint    string   `env:"PAYROLL_MINIO_ENDPOINT"`
	MinIOAccessKey   string   `env:"PAYROLL_MINIO_ACCESS_KEY"`
	MinIOSecretKey   string   `env:"PAYROLL_MINIO_SECRET_KEY"`
	MinIOBucket      string   `env:"PAYROLL_MINIO_BUCKET" envDefault:"payroll"`
	MinIOSecure      bool     `env:"PAYROLL_MINIO_SECURE" envDefault:"true"`
	MaxUploadMB      float64  `env:"PAYROLL_MAX_UPLOAD_MB" envDefault:"5"`
	AllowedTypes     []string `env:"PAYROLL_ALLOWED_FILE_TYPES" envSeparator:"," envDefault:"image/jpeg,image/png,image/jpg,application/pdf"`
}

// UploadURL is the direct upload endpoint of the media host.
func (m MediaOptions) UploadURL() string {
	if m.CloudinaryURL != "" {
		return m.CloudinaryURL
	}
	return fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/upload", m.CloudinaryCloud)
}

// Load reads the existing env files (missing ones are skipped) and then the
// process environment.
func Load(envFiles ...string) (Config, error) {
	existing := make([]string, 0, len(envFiles))
	for _, file := range envFiles {
		if _, err := os.Stat(file); err == nil {
			existing = append(existing, file)
		}
	}
	if len(existing) > 0 {
		if err := godotenv.Load(existing...); err != nil {
			return Config{}, fmt.Errorf("load env files: %w", err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.SessionFile == "" {
		cfg.SessionFile = defaultSessionFile()
	}
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")
	return cfg, nil
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "payrollctl", "session.json")
}

func (c Config) Validate() error {
	parsed, err := url.Parse(c.APIURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("PAYROLL_API_URL must be an absolute URL")
	}
	if c.Environment == "production" && strings.TrimSpace(c.SessionKey) == "" {
		return fmt.Errorf("PAYROLL_SESSION_KEY must be set in production for encryption at rest")
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("PAYROLL_PAGE_SIZE must be positive")
	}
	if c.Media.MaxUploadMB <= 0 {
		return fmt.Errorf("PAYROLL_MAX_UPLOAD_MB must be positive")
	}
	if len(c.Media.AllowedTypes) == 0 {
		return fmt.Errorf("PAYROLL_ALLOWED_FILE_TYPES must list at least one MIME type")
	}
	switch c.Media.Provider {
	case MediaProviderCloudinary:
		if c.Media.CloudinaryURL == "" && (c.Media.CloudinaryCloud == "" || c.Media.CloudinaryPreset == "") {
			return fmt.Errorf("PAYROLL_CLOUDINARY_CLOUD and PAYROLL_CLOUDINARY_PRESET are required for the cloudinary provider")
		}
	case MediaProviderMinIO:
		if c.Media.MinIOEndpoint == "" || c.Media.MinIOBucket == "" {
			return fmt.Errorf("PAYROLL_MINIO_ENDPOINT and PAYROLL_MINIO_BUCKET are required for the minio provider")
		}
	default:
		return fmt.Errorf("PAYROLL_MEDIA_PROVIDER must be %q or %q", MediaProviderCloudinary, MediaProviderMinIO)
	}
	return nil
}
