package options

import (
	"context"
	"os/exec"
	"strings"
)

// CommandRunner runs an external command and returns its standard output.
type CommandRunner interface {
	Output(ctx context.Context, name string, args ...string) (string, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Output runs name with args and returns trimmed stdout.
func (ExecRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// LookupGitIdentity fills unset AuthorName and AuthorEmail from
// `git config user.name` and `git config user.email`. A failed or empty
// lookup leaves the field unset so it is asked for later. It returns the
// names of the fields it could not fill.
func (o *Options) LookupGitIdentity(ctx context.Context, runner CommandRunner) []string {
	var missing []string
	lookups := []struct {
		field *Field
		key   string
	}{
		{&o.AuthorName, "user.name"},
		{&o.AuthorEmail, "user.email"},
	}
	for _, l := range lookups {
		if l.field.set {
			continue
		}
		value, err := runner.Output(ctx, "git", "config", l.key)
		if err != nil || value == "" {
			missing = append(missing, l.field.name)
			continue
		}
		l.field.Set(value)
	}
	return missing
}
