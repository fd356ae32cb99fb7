package scaffold

import (
	"context"
	"fmt"

	"github.com/cmccandless/python-bootstrap/internal/license"
)

// License downloads the text of Opts.License, fills in the year and the
// author, and writes LICENSE. Nothing is written when the download fails.
func (g *Generator) License(ctx context.Context) error {
	if g.Fetcher == nil {
		return fmt.Errorf("no license fetcher configured")
	}
	lic, err := g.Fetcher.Fetch(ctx, g.Opts.License)
	if err != nil {
		return err
	}

	author, err := g.Opts.Author()
	if err != nil {
		return err
	}

	text := license.Fill(lic.Text, g.Opts.Now.Format("2006"), author)
	return g.writeFile(LicenseFile, []byte(text))
}
