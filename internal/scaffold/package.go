package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
)

// PackageDir creates the importable package directory with an initializer
// and a version module. An existing directory is reused.
func (g *Generator) PackageDir() error {
	snake, err := g.Opts.SnakeCaseName()
	if err != nil {
		return err
	}

	dir := filepath.Join(g.Dir, snake)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating package directory %s: %w", dir, err)
	}

	version := g.Opts.InitialVersion
	if version == "" {
		version = defaultVersion
	}

	if err := g.renderTo(filepath.Join(snake, InitFile), "init.py.tmpl", nil); err != nil {
		return err
	}
	return g.renderTo(filepath.Join(snake, VersionFile), "version.py.tmpl", struct{ Version string }{version})
}
