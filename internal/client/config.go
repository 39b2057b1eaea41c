package client

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const (
	DefaultBaseURL       = "https://api.openai.com/v1"
	DefaultModel         = "gpt-4.1-mini"
	DefaultMaxTokens     = 2000
	DefaultMaxInputChars = 200000
	DefaultTimeoutSecs   = 120
	EnvAPIKey            = "OPENAI_API_KEY"
	EnvBaseURL           = "OPENAI_BASE_URL"
	ConfigDirName        = ".lazycommit"
	ConfigFileName       = "config.json"
)

// Config is the resolved client configuration for one run.
type Config struct {
	APIKey         string
	BaseURL        string
	Model          string
	MaxTokens      int
	MaxInputChars  int
	Language       string
	TimeoutSeconds int
}

// IsConfigured returns true if the API key is set.
func (c *Config) IsConfigured() bool {
	return c.APIKey != ""
}

// FileConfig is the on-disk shape of ~/.lazycommit/config.json. Zero values
// mean "not set": the loader falls back to the defaults, so an explicit
// unlimited diff budget has to come from the command line.
type FileConfig struct {
	APIKey        string `json:"api_key,omitempty"`
	BaseURL       string `json:"base_url,omitempty"`
	Model         string `json:"model,omitempty"`
	MaxTokens     int    `json:"max_tokens,omitempty"`
	MaxInputChars int    `json:"max_input_chars,omitempty"`
	Language      string `json:"language,omitempty"`
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ConfigDirName, ConfigFileName)
}

// ConfigDir returns the path to the config directory.
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ConfigDirName)
}

// LoadFileConfig loads the config file from disk. A missing file is not an
// error; it just means nothing has been saved yet.
func LoadFileConfig() (*FileConfig, error) {
	path := ConfigPath()
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var fc FileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, err
	}

	return &fc, nil
}

// SaveFileConfig saves the config to disk. The key lives in the user's home,
// so the directory and file are created private.
func SaveFileConfig(fc *FileConfig) error {
	dir := ConfigDir()
	if dir == "" {
		return os.ErrNotExist
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(ConfigPath(), data, 0600)
}

// LoadConfig loads configuration from environment variables, falling back to
// the config file, falling back to defaults. Flag values override the result
// at the command layer.
func LoadConfig() *Config {
	cfg := &Config{
		APIKey:         os.Getenv(EnvAPIKey),
		BaseURL:        os.Getenv(EnvBaseURL),
		TimeoutSeconds: DefaultTimeoutSecs,
	}

	if fc, err := LoadFileConfig(); err == nil && fc != nil {
		if cfg.APIKey == "" {
			cfg.APIKey = fc.APIKey
		}
		if cfg.BaseURL == "" {
			cfg.BaseURL = fc.BaseURL
		}
		cfg.Model = fc.Model
		cfg.MaxTokens = fc.MaxTokens
		cfg.MaxInputChars = fc.MaxInputChars
		cfg.Language = fc.Language
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	if cfg.MaxInputChars == 0 {
		cfg.MaxInputChars = DefaultMaxInputChars
	}
	if cfg.Language == "" {
		cfg.Language = "en"
	}

	return cfg
}

// MaskAPIKey returns a masked version of the API key for display.
func MaskAPIKey(key string) string {
	if len(key) <= 4 {
		return "***"
	}
	return "***..." + key[len(key)-4:]
}
