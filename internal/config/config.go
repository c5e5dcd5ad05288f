package config

import (
	"os"
	"path/filepath"
)

// Config is the root client configuration.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// APIConfig holds the remote API settings.
type APIConfig struct {
	BaseURL   string `yaml:"base_url"   env:"AGEI_API_BASE_URL" env-default:"http://localhost:5000/api"`
	UserAgent string `yaml:"user_agent" env:"AGEI_USER_AGENT"`
}

// StorageConfig holds the local key/value storage settings.
type StorageConfig struct {
	Path          string `yaml:"path"           env:"AGEI_STORAGE_PATH"`
	CredentialKey string `yaml:"credential_key" env:"AGEI_CREDENTIAL_KEY" env-default:"@AGEI:token"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"warn"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// DefaultStoragePath is where the storage file lives when no path is
// configured: agei/storage.json under the user's config directory, or
// under the working directory if there is none.
func DefaultStoragePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "agei", "storage.json")
}
