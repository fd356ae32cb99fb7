package scaffold

type setupData struct {
	Description    string
	SnakeCase      string
	GitHubUsername string
	AuthorName     string
	AuthorEmail    string
}

// SetupScript writes setup.py.
func (g *Generator) SetupScript() error {
	var (
		data setupData
		err  error
	)
	if data.Description, err = g.Opts.DescriptionText(); err != nil {
		return err
	}
	if data.SnakeCase, err = g.Opts.SnakeCaseName(); err != nil {
		return err
	}
	if data.GitHubUsername, err = g.Opts.GitHubUser(); err != nil {
		return err
	}
	if data.AuthorName, err = g.Opts.Author(); err != nil {
		return err
	}
	if data.AuthorEmail, err = g.Opts.Email(); err != nil {
		return err
	}
	return g.renderTo(SetupFile, "setup.py.tmpl", data)
}
