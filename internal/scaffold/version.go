package scaffold

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

const defaultVersion = "1.0.0"

// NormalizeVersion parses a semantic version, tolerating a leading "v",
// and returns it in canonical MAJOR.MINOR.PATCH form.
func NormalizeVersion(version string) (string, error) {
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return "", fmt.Errorf("invalid version %q: %w", version, err)
	}
	return v.String(), nil
}
