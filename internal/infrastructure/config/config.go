package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

func init() {
	// Load .env file if it exists (ignores error if not found)
	godotenv.Load()
}

// DefaultConfigFileName is looked up in the home directory when
// GOOGLE_ADS_CONFIGURATION_FILE_PATH is not set.
const DefaultConfigFileName = "google-ads.yaml"

// ErrMissingCredentials is returned when the OAuth2 or developer credentials are incomplete
var ErrMissingCredentials = errors.New("missing Google Ads credentials")

type Config struct {
	Environment    string
	APIVersion     string
	Endpoint       string
	AssetCachePath string // "off" disables the cache
	RequestTimeout int    // seconds

	// Google Ads client
	DeveloperToken  string
	ClientID        string
	ClientSecret    string
	RefreshToken    string
	LoginCustomerID string
}

// fileConfig mirrors the google-ads.yaml keys used by the official client libraries
type fileConfig struct {
	DeveloperToken  string `yaml:"developer_token"`
	ClientID        string `yaml:"client_id"`
	ClientSecret    string `yaml:"client_secret"`
	RefreshToken    string `yaml:"refresh_token"`
	LoginCustomerID string `yaml:"login_customer_id"`
	Endpoint        string `yaml:"endpoint"`
}

// Load reads google-ads.yaml and applies environment overrides
func Load() (*Config, error) {
	path := os.Getenv("GOOGLE_ADS_CONFIGURATION_FILE_PATH")
	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, DefaultConfigFileName)
		}
	}
	return LoadFile(path, explicit)
}

// LoadFile is Load with an explicit file path. A missing file is only an
// error when required is true.
func LoadFile(path string, required bool) (*Config, error) {
	var fc fileConfig
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &fc); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist) && !required:
		default:
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	}

	cfg := &Config{
		Environment:     getEnv("ENVIRONMENT", "development"),
		APIVersion:      getEnv("GOOGLE_ADS_API_VERSION", "v17"),
		Endpoint:        getEnv("GOOGLE_ADS_ENDPOINT", withDefault(fc.Endpoint, "https://googleads.googleapis.com")),
		AssetCachePath:  getEnv("GOOGLE_ADS_ASSET_CACHE_PATH", "./data/assets.db"),
		RequestTimeout:  int(getEnvAsInt64("REQUEST_TIMEOUT_SECONDS", 120)),
		DeveloperToken:  getEnv("GOOGLE_ADS_DEVELOPER_TOKEN", fc.DeveloperToken),
		ClientID:        getEnv("GOOGLE_ADS_CLIENT_ID", fc.ClientID),
		ClientSecret:    getEnv("GOOGLE_ADS_CLIENT_SECRET", fc.ClientSecret),
		RefreshToken:    getEnv("GOOGLE_ADS_REFRESH_TOKEN", fc.RefreshToken),
		LoginCustomerID: strings.ReplaceAll(getEnv("GOOGLE_ADS_LOGIN_CUSTOMER_ID", fc.LoginCustomerID), "-", ""),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// CacheEnabled reports whether the image asset cache should be opened
func (c *Config) CacheEnabled() bool {
	return c.AssetCachePath != "" && c.AssetCachePath != "off"
}

func (c *Config) validate() error {
	var missing []string
	if c.DeveloperToken == "" {
		missing = append(missing, "developer_token")
	}
	if c.ClientID == "" {
		missing = append(missing, "client_id")
	}
	if c.ClientSecret == "" {
		missing = append(missing, "client_secret")
	}
	if c.RefreshToken == "" {
		missing = append(missing, "refresh_token")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingCredentials, strings.Join(missing, ", "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func withDefault(value, defaultValue string) string {
	if value != "" {
		return value
	}
	return defaultValue
}
