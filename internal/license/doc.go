// Package license knows the supported license identifiers and downloads
// license texts from a license-text service. Downloaded texts carry [year]
// and [fullname] placeholders that Fill replaces.
package license
