package scaffold

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"text/template"

	"github.com/charmbracelet/log"

	"github.com/cmccandless/python-bootstrap/internal/license"
	"github.com/cmccandless/python-bootstrap/internal/options"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Output file names, relative to the generator directory.
const (
	LicenseFile = "LICENSE"
	ReadmeFile  = "README.md"
	SetupFile   = "setup.py"
	TravisFile  = ".travis.yml"
	InitFile    = "__init__.py"
	VersionFile = "__version__.py"
)

// CI services with a config template.
const CITravis = "travis"

// CIServices lists the supported CI services.
var CIServices = []string{CITravis}

// IsCIService reports whether name is a supported CI service.
func IsCIService(name string) bool {
	return slices.Contains(CIServices, name)
}

// Result holds the outcome of a scaffold run.
type Result struct {
	OutputDir string
	Files     []string
}

// Generator writes scaffold files into Dir, overwriting existing files.
type Generator struct {
	Dir     string
	Opts    *options.Options
	Fetcher license.Fetcher
	Logger  *log.Logger

	result Result
}

// New creates a Generator writing into dir.
func New(dir string, opts *options.Options, fetcher license.Fetcher, logger *log.Logger) *Generator {
	if logger == nil {
		logger = log.Default()
	}
	return &Generator{
		Dir:     dir,
		Opts:    opts,
		Fetcher: fetcher,
		Logger:  logger,
		result:  Result{OutputDir: dir},
	}
}

// Run generates every artifact the options ask for: LICENSE, README,
// package directory, setup.py and CI config, in that order. The first
// failure stops the run; files already written are kept.
func (g *Generator) Run(ctx context.Context) (*Result, error) {
	if err := os.MkdirAll(g.Dir, 0755); err != nil {
		return &g.result, fmt.Errorf("creating output directory: %w", err)
	}
	if g.Opts.License != "" {
		if err := g.License(ctx); err != nil {
			return &g.result, err
		}
	}
	if !g.Opts.NoReadme {
		if err := g.Readme(); err != nil {
			return &g.result, err
		}
	}
	if !g.Opts.NoPackage {
		if err := g.PackageDir(); err != nil {
			return &g.result, err
		}
	}
	if !g.Opts.NoSetup {
		if err := g.SetupScript(); err != nil {
			return &g.result, err
		}
	}
	if g.Opts.CI != "" {
		if err := g.CIConfig(); err != nil {
			return &g.result, err
		}
	}
	return &g.result, nil
}

// render executes the named embedded template with data.
func render(name string, data any) ([]byte, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/"+name)
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// writeFile writes content to rel under Dir and records it.
func (g *Generator) writeFile(rel string, content []byte) error {
	path := filepath.Join(g.Dir, rel)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	g.result.Files = append(g.result.Files, rel)
	g.Logger.Info("wrote", "file", path)
	return nil
}

// renderTo renders a template and writes the result to rel.
func (g *Generator) renderTo(rel, tmpl string, data any) error {
	content, err := render(tmpl, data)
	if err != nil {
		return err
	}
	return g.writeFile(rel, content)
}
