// Package branding provides compile-time identity values for the CLI.
//
// Values come from branding.yaml, baked into the binary with //go:embed.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName       string `yaml:"cli_name"`
	DisplayName   string `yaml:"display_name"`
	Description   string `yaml:"description"`
	HomeDir       string `yaml:"home_dir"`
	EnvPrefix     string `yaml:"env_prefix"`
	LicenseAPIURL string `yaml:"license_api_url"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:       "python-bootstrap",
			DisplayName:   "Python Bootstrap",
			Description:   "Scaffold a new Python package",
			HomeDir:       ".python-bootstrap",
			EnvPrefix:     "PYTHON_BOOTSTRAP",
			LicenseAPIURL: "https://licenseapi.herokuapp.com/licenses",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "python-bootstrap").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".python-bootstrap").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "PYTHON_BOOTSTRAP").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// LicenseAPIURL returns the default base URL of the license-text service.
func LicenseAPIURL() string { load(); return defaults.LicenseAPIURL }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "PYTHON_BOOTSTRAP_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
