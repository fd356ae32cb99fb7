package scaffold

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"
	"go.yaml.in/yaml/v3"

	"github.com/cmccandless/python-bootstrap/internal/license"
	"github.com/cmccandless/python-bootstrap/internal/options"
)

// answers is a value source that records how often each field was asked for.
type answers struct {
	values map[string]string
	asked  map[string]int
}

func (a *answers) Value(field string) (string, error) {
	if a.asked == nil {
		a.asked = make(map[string]int)
	}
	a.asked[field]++
	v, ok := a.values[field]
	if !ok {
		return "", io.EOF
	}
	return v, nil
}

func fullAnswers() *answers {
	return &answers{values: map[string]string{
		options.NamePackage:        "My Cool App",
		options.NameDescription:    "Does cool things",
		options.NameAuthorName:     "Jane Doe",
		options.NameAuthorEmail:    "jane@example.com",
		options.NameGitHubUsername: "janedoe",
		options.NamePyPIUsername:   "jane-pypi",
		options.NameTravisUsername: "jane-travis",
	}}
}

func staticFetcher(text string) license.Fetcher {
	return license.FetcherFunc(func(_ context.Context, id string) (*license.License, error) {
		return &license.License{Key: id, Text: text}, nil
	})
}

func newTestGenerator(t *testing.T, src options.ValueSource, fetcher license.Fetcher) (*Generator, *options.Options) {
	t.Helper()
	opts := options.New(src)
	opts.Now = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	return New(t.TempDir(), opts, fetcher, log.New(io.Discard)), opts
}

func TestReadmeWithBadges(t *testing.T) {
	g, opts := newTestGenerator(t, fullAnswers(), nil)
	opts.CI = CITravis

	if err := g.Readme(); err != nil {
		t.Fatalf("Readme() error: %v", err)
	}

	content := readGenerated(t, g.Dir, ReadmeFile)
	assertContains(t, content, "[![Build Status](https://travis-ci.com/jane-travis/my_cool_app.svg?branch=master)](https://travis-ci.com/jane-travis/my_cool_app)")
	assertContains(t, content, "[![PyPI](https://img.shields.io/pypi/v/my-cool-app.svg)](https://pypi.org/project/my-cool-app)")
	assertContains(t, content, "# My Cool App\nDoes cool things\n")
	assertContains(t, content, "pip install my-cool-app")

	if !strings.HasPrefix(content, "[![Build Status]") {
		t.Errorf("badges should come first, got:\n%s", content)
	}
}

func TestReadmeWithoutBadges(t *testing.T) {
	src := fullAnswers()
	g, opts := newTestGenerator(t, src, nil)
	opts.NoPyPI = true

	if err := g.Readme(); err != nil {
		t.Fatalf("Readme() error: %v", err)
	}

	content := readGenerated(t, g.Dir, ReadmeFile)
	assertNotContains(t, content, "[![")
	if !strings.HasPrefix(content, "\n\n\n# My Cool App") {
		t.Errorf("unexpected README start:\n%q", content)
	}
	if src.asked[options.NameTravisUsername] != 0 {
		t.Error("travis username should not be asked for without a CI service")
	}
}

func TestSetupScript(t *testing.T) {
	g, _ := newTestGenerator(t, fullAnswers(), nil)

	if err := g.SetupScript(); err != nil {
		t.Fatalf("SetupScript() error: %v", err)
	}

	content := readGenerated(t, g.Dir, SetupFile)
	assertContains(t, content, "from my_cool_app.__version__ import VERSION")
	assertContains(t, content, `name="my_cool_app",`)
	assertContains(t, content, `author="Jane Doe",`)
	assertContains(t, content, `author_email="jane@example.com",`)
	assertContains(t, content, `"Does cool things"`)
	assertContains(t, content, `url="https://github.com/janedoe/my_cool_app",`)
	assertContains(t, content, "entry_points={},")
	assertContains(t, content, `long_description += changelog() + '\n'`)
}

func TestPackageDir(t *testing.T) {
	g, opts := newTestGenerator(t, fullAnswers(), nil)
	opts.InitialVersion = "0.2.0"

	// Running twice exercises the existing-directory path.
	for i := 0; i < 2; i++ {
		if err := g.PackageDir(); err != nil {
			t.Fatalf("PackageDir() run %d error: %v", i+1, err)
		}
	}

	pkgDir := filepath.Join(g.Dir, "my_cool_app")
	if got := readGenerated(t, pkgDir, InitFile); got != "from .__version__ import VERSION\n" {
		t.Errorf("__init__.py = %q", got)
	}
	if got := readGenerated(t, pkgDir, VersionFile); got != "VERSION = '0.2.0'\n" {
		t.Errorf("__version__.py = %q", got)
	}
}

func TestPackageDirDefaultVersion(t *testing.T) {
	g, opts := newTestGenerator(t, fullAnswers(), nil)
	opts.InitialVersion = ""

	if err := g.PackageDir(); err != nil {
		t.Fatalf("PackageDir() error: %v", err)
	}
	got := readGenerated(t, filepath.Join(g.Dir, "my_cool_app"), VersionFile)
	if got != "VERSION = '1.0.0'\n" {
		t.Errorf("__version__.py = %q", got)
	}
}

func TestTravisConfig(t *testing.T) {
	g, opts := newTestGenerator(t, fullAnswers(), nil)
	opts.CI = CITravis

	if err := g.CIConfig(); err != nil {
		t.Fatalf("CIConfig() error: %v", err)
	}

	content := readGenerated(t, g.Dir, TravisFile)

	var doc struct {
		Language string   `yaml:"language"`
		Install  []string `yaml:"install"`
		Deploy   struct {
			Provider string `yaml:"provider"`
			User     string `yaml:"user"`
			On       struct {
				Repo string `yaml:"repo"`
			} `yaml:"on"`
		} `yaml:"deploy"`
	}
	if err := yaml.Unmarshal([]byte(content), &doc); err != nil {
		t.Fatalf("generated .travis.yml is not valid YAML: %v\n%s", err, content)
	}
	if doc.Language != "python" {
		t.Errorf("language = %q", doc.Language)
	}
	if doc.Deploy.User != "jane-pypi" {
		t.Errorf("deploy.user = %q, want %q", doc.Deploy.User, "jane-pypi")
	}
	if doc.Deploy.On.Repo != "janedoe/my_cool_app" {
		t.Errorf("deploy.on.repo = %q, want %q", doc.Deploy.On.Repo, "janedoe/my_cool_app")
	}
	if diff := cmp.Diff([]string{"make init", "python -m pip install -e ."}, doc.Install); diff != "" {
		t.Errorf("install mismatch (-want +got):\n%s", diff)
	}
}

func TestCIConfigUnsupported(t *testing.T) {
	g, opts := newTestGenerator(t, fullAnswers(), nil)
	opts.CI = "jenkins"

	if err := g.CIConfig(); err == nil {
		t.Fatal("expected error for unsupported CI service")
	}
}

func TestLicense(t *testing.T) {
	g, opts := newTestGenerator(t, fullAnswers(), staticFetcher("... [year] ... [fullname] ..."))
	opts.License = "mit"

	if err := g.License(context.Background()); err != nil {
		t.Fatalf("License() error: %v", err)
	}

	got := readGenerated(t, g.Dir, LicenseFile)
	if got != "... 2024 ... Jane Doe ..." {
		t.Errorf("LICENSE = %q, want %q", got, "... 2024 ... Jane Doe ...")
	}
}

func TestLicenseFetchFailure(t *testing.T) {
	fetchErr := &license.StatusError{ID: "mit", StatusCode: 404}
	fetcher := license.FetcherFunc(func(context.Context, string) (*license.License, error) {
		return nil, fetchErr
	})
	src := fullAnswers()
	g, opts := newTestGenerator(t, src, fetcher)
	opts.License = "mit"

	err := g.License(context.Background())
	if !errors.Is(err, fetchErr) {
		t.Fatalf("License() error = %v, want %v", err, fetchErr)
	}
	if _, statErr := os.Stat(filepath.Join(g.Dir, LicenseFile)); !os.IsNotExist(statErr) {
		t.Error("LICENSE should not exist after a failed download")
	}
	if len(src.asked) != 0 {
		t.Errorf("nothing should be asked before the download succeeds, got %v", src.asked)
	}
}

func TestRunAllArtifacts(t *testing.T) {
	src := fullAnswers()
	g, opts := newTestGenerator(t, src, staticFetcher("Copyright [year] [fullname]"))
	opts.License = "mit"
	opts.CI = CITravis

	result, err := g.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	want := []string{
		LicenseFile,
		ReadmeFile,
		filepath.Join("my_cool_app", InitFile),
		filepath.Join("my_cool_app", VersionFile),
		SetupFile,
		TravisFile,
	}
	if diff := cmp.Diff(want, result.Files); diff != "" {
		t.Errorf("files mismatch (-want +got):\n%s", diff)
	}

	for field, n := range src.asked {
		if n != 1 {
			t.Errorf("field %s asked %d times, want 1", field, n)
		}
	}
}

func TestRunSuppressed(t *testing.T) {
	g, opts := newTestGenerator(t, fullAnswers(), nil)
	opts.NoReadme = true
	opts.NoPackage = true

	result, err := g.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if diff := cmp.Diff([]string{SetupFile}, result.Files); diff != "" {
		t.Errorf("files mismatch (-want +got):\n%s", diff)
	}
}

func TestRunStopsAtFirstError(t *testing.T) {
	src := fullAnswers()
	delete(src.values, options.NameGitHubUsername)
	g, _ := newTestGenerator(t, src, nil)

	result, err := g.Run(context.Background())
	if !errors.Is(err, io.EOF) {
		t.Fatalf("Run() error = %v, want io.EOF", err)
	}

	// README and package directory were written before setup.py failed.
	want := []string{
		ReadmeFile,
		filepath.Join("my_cool_app", InitFile),
		filepath.Join("my_cool_app", VersionFile),
	}
	if diff := cmp.Diff(want, result.Files); diff != "" {
		t.Errorf("files mismatch (-want +got):\n%s", diff)
	}
	if _, statErr := os.Stat(filepath.Join(g.Dir, SetupFile)); !os.IsNotExist(statErr) {
		t.Error("setup.py should not exist")
	}
}

func TestRunOverwrites(t *testing.T) {
	g, opts := newTestGenerator(t, fullAnswers(), nil)
	opts.NoPackage = true
	opts.NoSetup = true
	opts.NoPyPI = true

	if err := os.WriteFile(filepath.Join(g.Dir, ReadmeFile), []byte("old content"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	assertNotContains(t, readGenerated(t, g.Dir, ReadmeFile), "old content")
}

func TestNormalizeVersion(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"1.0.0", "1.0.0", false},
		{"v0.3.1", "0.3.1", false},
		{"2.1", "2.1.0", false},
		{"1.0.0-beta.1", "1.0.0-beta.1", false},
		{"latest", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := NormalizeVersion(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("NormalizeVersion(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("NormalizeVersion(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("NormalizeVersion(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsCIService(t *testing.T) {
	if !IsCIService("travis") {
		t.Error("travis should be supported")
	}
	for _, name := range []string{"", "Travis", "jenkins"} {
		if IsCIService(name) {
			t.Errorf("IsCIService(%q) = true, want false", name)
		}
	}
}

// ─── Test Helpers ──────────────────────────────────────────────────

func readGenerated(t *testing.T, dir, filename string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, filename))
	if err != nil {
		t.Fatalf("reading %s: %v", filename, err)
	}
	return string(data)
}

func assertContains(t *testing.T, content, substr string) {
	t.Helper()
	if !strings.Contains(content, substr) {
		t.Errorf("content does not contain %q\n--- content ---\n%s", substr, content)
	}
}

func assertNotContains(t *testing.T, content, substr string) {
	t.Helper()
	if strings.Contains(content, substr) {
		t.Errorf("content should not contain %q", substr)
	}
}
