package scaffold

import "fmt"

type travisData struct {
	PyPIUsername   string
	GitHubUsername string
	SnakeCase      string
}

// CIConfig writes the config file of the selected CI service.
func (g *Generator) CIConfig() error {
	switch g.Opts.CI {
	case CITravis:
		return g.travisConfig()
	default:
		return fmt.Errorf("unsupported CI service %q", g.Opts.CI)
	}
}

func (g *Generator) travisConfig() error {
	var (
		data travisData
		err  error
	)
	if data.PyPIUsername, err = g.Opts.PyPIUser(); err != nil {
		return err
	}
	if data.GitHubUsername, err = g.Opts.GitHubUser(); err != nil {
		return err
	}
	if data.SnakeCase, err = g.Opts.SnakeCaseName(); err != nil {
		return err
	}
	return g.renderTo(TravisFile, "travis.yml.tmpl", data)
}
