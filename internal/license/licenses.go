package license

import (
	"slices"
	"strings"
)

// Default is used when --license is given without a value.
const Default = "mit"

// Supported lists every license identifier the service knows, in display order.
var Supported = []string{
	"afl-3.0", "agpl-3.0", "apache-2.0", "artistic-2.0", "bsd-2-clause",
	"bsd-3-clause-clear", "bsd-3-clause", "bsl-1.0", "cc-by-4.0",
	"cc-by-sa-4.0", "cc0-1.0", "ecl-2.0", "epl-1.0", "epl-2.0", "eupl-1.1",
	"eupl-1.2", "gpl-2.0", "gpl-3.0", "isc", "lgpl-2.1", "lgpl-3.0",
	"lppl-1.3c", "mit", "mpl-2.0", "ms-pl", "ms-rl", "ncsa", "ofl-1.1",
	"osl-3.0", "postgresql", "unlicense", "upl-1.0", "wtfpl", "zlib",
}

// IsSupported reports whether id (case-insensitive) is a supported identifier.
func IsSupported(id string) bool {
	return slices.Contains(Supported, strings.ToLower(id))
}

// Fill replaces the [year] and [fullname] placeholders in text.
func Fill(text, year, fullname string) string {
	return strings.NewReplacer("[year]", year, "[fullname]", fullname).Replace(text)
}
