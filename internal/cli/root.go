package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/cmccandless/python-bootstrap/internal/branding"
	"github.com/cmccandless/python-bootstrap/internal/config"
	"github.com/cmccandless/python-bootstrap/internal/help"
	"github.com/cmccandless/python-bootstrap/internal/license"
	"github.com/cmccandless/python-bootstrap/internal/options"
	"github.com/cmccandless/python-bootstrap/internal/prompt"
	"github.com/cmccandless/python-bootstrap/internal/scaffold"
)

// app holds the process dependencies and the parsed root flags.
type app struct {
	in         io.Reader
	out        io.Writer
	errOut     io.Writer
	httpClient *http.Client
	git        options.CommandRunner
	now        func() time.Time
	logger     *log.Logger

	quiet          bool
	description    string
	license        *choiceValue
	ci             *choiceValue
	outputDir      string
	initialVersion string
	noReadme       bool
	noPackage      bool
	noPyPI         bool
	noSetup        bool
}

func newApp(in io.Reader, out, errOut io.Writer) *app {
	return &app{
		in:         in,
		out:        out,
		errOut:     errOut,
		httpClient: http.DefaultClient,
		git:        options.ExecRunner{},
		now:        time.Now,
		logger:     log.New(errOut),
		license:    newChoiceValue(license.Supported, license.IsSupported),
		ci:         newChoiceValue(scaffold.CIServices, scaffold.IsCIService),
	}
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	a := newApp(os.Stdin, os.Stdout, os.Stderr)
	return a.execute(context.Background(), newRootCmd(a, version, commit, date), os.Args[1:])
}

// execute runs cmd with args and reports any error through the logger.
func (a *app) execute(ctx context.Context, cmd *cobra.Command, args []string) error {
	cmd.SetArgs(joinOptionalValues(args, commandFlags(cmd)))
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return nil
	}

	var statusErr *license.StatusError
	var usageErr *UsageError
	switch {
	case errors.As(err, &statusErr):
		a.logger.Error("Unable to download license text", "license", statusErr.ID, "status", statusErr.StatusCode)
	case errors.As(err, &usageErr):
		a.logger.Error(err.Error())
		fmt.Fprintf(a.errOut, "Run '%s --help' for usage.\n", branding.CLIName())
	default:
		a.logger.Error(err.Error())
	}
	return err
}

func newRootCmd(a *app, version, commit, date string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   branding.CLIName() + " [PACKAGE_NAME]",
		Short: branding.Description(),
		Long: branding.DisplayName() + ` writes setup.py, README.md, LICENSE, a CI config and the package
directory for a new Python package into the current directory. Values that
cannot be taken from flags, user settings or git are asked for once.`,
		Example: fmt.Sprintf(`  %[1]s "My Cool App" -d "Does cool things" --license mit --ci
  %[1]s --help license`, branding.CLIName()),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          usageArgs(cobra.MaximumNArgs(1)),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if a.quiet {
				a.logger.SetLevel(log.ErrorLevel)
			}
			config.Load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.Context(), cmd, args)
		},
	}

	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetIn(a.in)
	cmd.SetOut(a.out)
	cmd.SetErr(a.errOut)
	cmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} {{.Version}} (commit: %s, built: %s) for %s\n", commit, date, runtime.Version()))
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	f := cmd.Flags()
	f.BoolP("help", "h", false, "Show this message or get info about another option\nEx: --help license")
	cmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "Only log errors")
	f.StringVarP(&a.description, "description", "d", "", "One-line package description")
	optionalChoice(cmd, a.license, "license", "l", license.Default, "Generate LICENSE (default mit); see --help license")
	optionalChoice(cmd, a.ci, "ci", "c", scaffold.CITravis, "Generate CI config")
	f.StringVarP(&a.outputDir, "output-dir", "o", ".", "Directory to write files into")
	f.StringVar(&a.initialVersion, "initial-version", options.DefaultInitialVersion, "Version the new package starts at")

	for _, suppress := range []struct {
		target *bool
		name   string
	}{
		{&a.noReadme, "no-readme"},
		{&a.noPackage, "no-package"},
		{&a.noPyPI, "no-pypi"},
		{&a.noSetup, "no-setup"},
	} {
		f.BoolVar(suppress.target, suppress.name, false, "")
		_ = f.MarkHidden(suppress.name)
	}

	installHelp(cmd)
	cmd.AddCommand(newConfigCmd())

	return cmd
}

// run builds the options record and generates every requested artifact.
func (a *app) run(ctx context.Context, cmd *cobra.Command, args []string) error {
	version, err := scaffold.NormalizeVersion(a.initialVersion)
	if err != nil {
		return &UsageError{Err: err}
	}

	opts := options.New(prompt.New(a.in, a.out, config.Accessible()))
	opts.Now = a.now()
	opts.License = a.license.String()
	opts.CI = a.ci.String()
	opts.InitialVersion = version
	opts.NoReadme = a.noReadme
	opts.NoPackage = a.noPackage
	opts.NoPyPI = a.noPyPI
	opts.NoSetup = a.noSetup

	if len(args) == 1 {
		opts.Package.Set(args[0])
	}
	if cmd.Flags().Changed("description") {
		opts.Description.Set(a.description)
	}
	opts.Seed(config.Seeds())
	if missing := opts.LookupGitIdentity(ctx, a.git); len(missing) > 0 {
		a.logger.Debug("git identity incomplete", "missing", missing)
	}

	fetcher := license.NewClient(
		license.WithHTTPClient(a.httpClient),
		license.WithBaseURL(config.LicenseAPI()),
	)

	gen := scaffold.New(a.outputDir, opts, fetcher, a.logger)
	result, err := gen.Run(ctx)
	if err != nil {
		return err
	}

	a.logger.Info("scaffold complete", "dir", result.OutputDir, "files", len(result.Files))
	return nil
}

// installHelp routes -h/--help and the help subcommand through help.Display,
// so that "--help license" lists the supported licenses. A help flag given
// before any subcommand name asks about a root topic, so "--help config"
// is a topic lookup while "config --help" shows the config command.
func installHelp(root *cobra.Command) {
	defaultHelp := root.HelpFunc()
	rootUsage := func() error {
		defaultHelp(root, nil)
		return nil
	}

	root.SetHelpFunc(func(c *cobra.Command, args []string) {
		if c != root && !helpBefore(args, topLevel(c).Name()) {
			defaultHelp(c, args)
			return
		}
		_ = help.Display(c.OutOrStdout(), helpTopic(args), rootUsage)
	})

	root.SetHelpCommand(&cobra.Command{
		Use:   "help [topic]",
		Short: "Show usage or help about a topic (e.g. license)",
		Args:  usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(c *cobra.Command, args []string) error {
			topic := ""
			if len(args) == 1 {
				topic = args[0]
			}
			return help.Display(c.OutOrStdout(), strings.ToLower(topic), rootUsage)
		},
	})
}

// topLevel returns the ancestor of c that is a direct child of the root.
func topLevel(c *cobra.Command) *cobra.Command {
	for c.HasParent() && c.Parent().HasParent() {
		c = c.Parent()
	}
	return c
}

// helpBefore reports whether -h/--help appears in args ahead of name.
func helpBefore(args []string, name string) bool {
	i := helpIndex(args)
	if i < 0 {
		return false
	}
	return !slices.Contains(args[:i], name)
}
