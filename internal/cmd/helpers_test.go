package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"simpleprops/internal/config"
	"simpleprops/internal/propsfile"
	"simpleprops/props"

	"github.com/spf13/cobra"
)

// setupTestApp creates an App over a properties file seeded with content
// (no file when content is empty).
func setupTestApp(t *testing.T, content string) (*App, *bytes.Buffer) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.properties")
	if content != "" {
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return newTestApp(t, path), new(bytes.Buffer)
}

func newTestApp(t *testing.T, path string, transforms ...props.Transform) *App {
	t.Helper()
	f, err := propsfile.Open(path, nil, nil, transforms...)
	if err != nil {
		t.Fatalf("opening %s: %v", path, err)
	}
	settings := config.Default()
	settings.File = path
	return &App{File: f, Settings: settings}
}

// run executes cmd with args against app, capturing output in out.
func run(t *testing.T, app *App, out *bytes.Buffer, newCmd func(*AppProvider) *cobra.Command, args ...string) error {
	t.Helper()
	app.Out = out
	app.Err = out
	c := newCmd(NewTestProvider(app))
	c.SetArgs(args)
	c.SetOut(out)
	c.SetErr(out)
	return c.Execute()
}

// readFile returns the properties file with line separators normalized.
func readFile(t *testing.T, app *App) string {
	t.Helper()
	raw, err := os.ReadFile(app.File.Path())
	if err != nil {
		t.Fatal(err)
	}
	return string(bytes.ReplaceAll(raw, []byte(props.LineSeparator), []byte("\n")))
}
