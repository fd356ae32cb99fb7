package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/cmccandless/python-bootstrap/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognised configuration keys.
const (
	KeyAuthorName     = "author_name"
	KeyAuthorEmail    = "author_email"
	KeyGitHubUsername = "github_username"
	KeyPyPIUsername   = "pypi_username"
	KeyTravisUsername = "travis_username"
	KeyLicenseAPI     = "license_api"
	KeyAccessible     = "accessible"
)

// Keys lists every key accepted by Set.
var Keys = []string{
	KeyAuthorName,
	KeyAuthorEmail,
	KeyGitHubUsername,
	KeyPyPIUsername,
	KeyTravisUsername,
	KeyLicenseAPI,
	KeyAccessible,
}

// seedKeys are the keys that pre-fill package metadata.
var seedKeys = []string{
	KeyAuthorName,
	KeyAuthorEmail,
	KeyGitHubUsername,
	KeyPyPIUsername,
	KeyTravisUsername,
}

var v = viper.New()

// Dir returns the config directory. PYTHON_BOOTSTRAP_HOME takes precedence
// over ~/.python-bootstrap/.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("HOME")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes a fresh Viper instance reading the config file and environment.
func Load() {
	v = viper.New()
	v.SetConfigFile(FilePath())
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()
	v.SetDefault(KeyLicenseAPI, branding.LicenseAPIURL())

	// Ignore error if config file doesn't exist yet.
	_ = v.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return v.GetString(key)
}

// LicenseAPI returns the base URL of the license-text service.
func LicenseAPI() string {
	if u := Get(KeyLicenseAPI); u != "" {
		return u
	}
	return branding.LicenseAPIURL()
}

// Accessible reports whether prompts should use plain screen-reader output.
func Accessible() bool {
	return v.GetBool(KeyAccessible)
}

// Seeds returns the non-empty package metadata values, keyed by field name.
func Seeds() map[string]string {
	seeds := make(map[string]string)
	for _, key := range seedKeys {
		if val := Get(key); val != "" {
			seeds[key] = val
		}
	}
	return seeds
}

// IsKnownKey reports whether key is a recognised configuration key.
func IsKnownKey(key string) bool {
	return slices.Contains(Keys, key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !IsKnownKey(key) {
		return fmt.Errorf("unknown key %q (known keys: %v)", key, Keys)
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	v.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
