package options

import (
	"fmt"
	"time"
)

// Field names as shown in prompts and accepted by Seed.
const (
	NamePackage           = "package"
	NamePackageSnakeCase  = "package_snakecase"
	NamePackageHyphenated = "package_hyphenated"
	NameDescription       = "description"
	NameAuthorName        = "author_name"
	NameAuthorEmail       = "author_email"
	NameGitHubUsername    = "github_username"
	NamePyPIUsername      = "pypi_username"
	NameTravisUsername    = "travis_username"
)

// DefaultInitialVersion is written to the generated version module.
const DefaultInitialVersion = "1.0.0"

// ValueSource supplies a value for a field that was never set.
type ValueSource interface {
	Value(field string) (string, error)
}

// ValueSourceFunc adapts a function to ValueSource.
type ValueSourceFunc func(field string) (string, error)

// Value calls f(field).
func (f ValueSourceFunc) Value(field string) (string, error) { return f(field) }

// Field is an optional string value. The zero value is unset.
type Field struct {
	name  string
	value string
	set   bool
}

// Name returns the field name.
func (f *Field) Name() string { return f.name }

// IsSet reports whether the field holds a value.
func (f *Field) IsSet() bool { return f.set }

// Get returns the value and whether it is set.
func (f *Field) Get() (string, bool) { return f.value, f.set }

// Set stores value. An empty string is a valid value.
func (f *Field) Set(value string) {
	f.value = value
	f.set = true
}

// Options is the record a scaffold run resolves its template values from.
type Options struct {
	Package           Field
	PackageSnakeCase  Field
	PackageHyphenated Field
	Description       Field
	AuthorName        Field
	AuthorEmail       Field
	GitHubUsername    Field
	PyPIUsername      Field
	TravisUsername    Field

	// License is the license identifier; empty means no LICENSE file.
	License string
	// CI is the CI service; empty means no CI config.
	CI string
	// Now is the run timestamp used for the copyright year.
	Now time.Time
	// InitialVersion is the version the new package starts at.
	InitialVersion string

	NoReadme  bool
	NoPackage bool
	NoSetup   bool
	NoPyPI    bool

	source ValueSource
}

// New returns an Options with every field unset that asks source for missing values.
func New(source ValueSource) *Options {
	o := &Options{
		Package:           Field{name: NamePackage},
		PackageSnakeCase:  Field{name: NamePackageSnakeCase},
		PackageHyphenated: Field{name: NamePackageHyphenated},
		Description:       Field{name: NameDescription},
		AuthorName:        Field{name: NameAuthorName},
		AuthorEmail:       Field{name: NameAuthorEmail},
		GitHubUsername:    Field{name: NameGitHubUsername},
		PyPIUsername:      Field{name: NamePyPIUsername},
		TravisUsername:    Field{name: NameTravisUsername},
		Now:               time.Now(),
		InitialVersion:    DefaultInitialVersion,
		source:            source,
	}
	return o
}

// fields returns every named field, in declaration order.
func (o *Options) fields() []*Field {
	return []*Field{
		&o.Package,
		&o.PackageSnakeCase,
		&o.PackageHyphenated,
		&o.Description,
		&o.AuthorName,
		&o.AuthorEmail,
		&o.GitHubUsername,
		&o.PyPIUsername,
		&o.TravisUsername,
	}
}

// Seed sets every unset field whose name appears in values with a non-empty value.
// Unknown names are ignored.
func (o *Options) Seed(values map[string]string) {
	for _, f := range o.fields() {
		if f.set {
			continue
		}
		if v := values[f.name]; v != "" {
			f.Set(v)
		}
	}
}

// Require returns the value of f, asking the value source once if f is unset.
func (o *Options) Require(f *Field) (string, error) {
	if f.set {
		return f.value, nil
	}
	if o.source == nil {
		return "", fmt.Errorf("%s: no value and no input source", f.name)
	}
	value, err := o.source.Value(f.name)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", f.name, err)
	}
	f.Set(value)
	return f.value, nil
}

// Derive returns the value of dst, computing transform(src) once if dst is unset.
// src is resolved with Require.
func (o *Options) Derive(dst, src *Field, transform func(string) string) (string, error) {
	if dst.set {
		return dst.value, nil
	}
	value, err := o.Require(src)
	if err != nil {
		return "", err
	}
	dst.Set(transform(value))
	return dst.value, nil
}

// PackageName resolves the canonical package name.
func (o *Options) PackageName() (string, error) { return o.Require(&o.Package) }

// SnakeCaseName resolves the importable package name (e.g., "my_cool_app").
func (o *Options) SnakeCaseName() (string, error) {
	return o.Derive(&o.PackageSnakeCase, &o.Package, SnakeCase)
}

// HyphenatedName resolves the distribution name (e.g., "my-cool-app").
func (o *Options) HyphenatedName() (string, error) {
	return o.Derive(&o.PackageHyphenated, &o.Package, Hyphenated)
}

// DescriptionText resolves the one-line package description.
func (o *Options) DescriptionText() (string, error) { return o.Require(&o.Description) }

// Author resolves the author's full name.
func (o *Options) Author() (string, error) { return o.Require(&o.AuthorName) }

// Email resolves the author's email address.
func (o *Options) Email() (string, error) { return o.Require(&o.AuthorEmail) }

// GitHubUser resolves the GitHub account hosting the repository.
func (o *Options) GitHubUser() (string, error) { return o.Require(&o.GitHubUsername) }

// PyPIUser resolves the PyPI account used for deployment.
func (o *Options) PyPIUser() (string, error) { return o.Require(&o.PyPIUsername) }

// TravisUser resolves the Travis CI account used in the build badge.
func (o *Options) TravisUser() (string, error) { return o.Require(&o.TravisUsername) }
