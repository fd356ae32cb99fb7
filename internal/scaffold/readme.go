package scaffold

import (
	"fmt"
	"strings"
)

type readmeData struct {
	Badges      string
	Package     string
	Description string
	Hyphenated  string
}

// badge returns a markdown image linking to url.
func badge(altText, image, url string) string {
	return fmt.Sprintf("[![%s](%s)](%s)", altText, image, url)
}

func (g *Generator) travisBadge() (string, error) {
	user, err := g.Opts.TravisUser()
	if err != nil {
		return "", err
	}
	snake, err := g.Opts.SnakeCaseName()
	if err != nil {
		return "", err
	}
	url := fmt.Sprintf("https://travis-ci.com/%s/%s", user, snake)
	return badge("Build Status", url+".svg?branch=master", url), nil
}

func (g *Generator) pypiBadge() (string, error) {
	name, err := g.Opts.HyphenatedName()
	if err != nil {
		return "", err
	}
	image := fmt.Sprintf("https://img.shields.io/pypi/v/%s.svg", name)
	return badge("PyPI", image, "https://pypi.org/project/"+name), nil
}

// badges returns the build badge when a CI service is selected and the
// PyPI badge unless suppressed.
func (g *Generator) badges() (string, error) {
	var out []string
	if g.Opts.CI == CITravis {
		b, err := g.travisBadge()
		if err != nil {
			return "", err
		}
		out = append(out, b)
	}
	if !g.Opts.NoPyPI {
		b, err := g.pypiBadge()
		if err != nil {
			return "", err
		}
		out = append(out, b)
	}
	return strings.Join(out, " "), nil
}

// Readme writes README.md.
func (g *Generator) Readme() error {
	var (
		data readmeData
		err  error
	)
	if data.Badges, err = g.badges(); err != nil {
		return err
	}
	if data.Package, err = g.Opts.PackageName(); err != nil {
		return err
	}
	if data.Description, err = g.Opts.DescriptionText(); err != nil {
		return err
	}
	if data.Hyphenated, err = g.Opts.HyphenatedName(); err != nil {
		return err
	}
	return g.renderTo(ReadmeFile, "README.md.tmpl", data)
}
