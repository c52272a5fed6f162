package e2etests

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// TestCase defines a named e2e test scenario.
type TestCase struct {
	Name string
	Fn   func(r *Runner, n *Normalizer, sandbox string) (string, error)
}

// testCases is the ordered registry of all e2e test cases.
var testCases = []TestCase{
	{"01_set_get", caseSetGet},
	{"02_comments", caseComments},
	{"03_encrypt", caseEncrypt},
	{"04_export_import", caseExportImport},
	{"05_errors", caseErrors},
}

// section writes a section header and normalized content to the builder.
func section(out *strings.Builder, label string, content string) {
	out.WriteString("=== ")
	out.WriteString(label)
	out.WriteString(" ===\n")
	out.WriteString(content)
	out.WriteString("\n\n")
}

// sectionFailure writes the exit code and stderr of a failed command.
func sectionFailure(out *strings.Builder, n *Normalizer, label string, result RunResult) {
	section(out, label, fmt.Sprintf("EXIT_CODE: %d\n%s", result.ExitCode, n.Normalize(result.Stderr)))
}

// mustRun runs a command and returns its normalized stdout, failing the
// test case on a non-zero exit.
func mustRun(r *Runner, n *Normalizer, sandbox string, args ...string) (string, error) {
	result := r.Run(sandbox, args...)
	if result.ExitCode != 0 {
		return "", fmt.Errorf("command %v failed (exit %d): %s", args, result.ExitCode, result.Stderr)
	}
	return n.Normalize(result.Stdout), nil
}

// step runs a command and records its output under a section named after
// the arguments.
func step(out *strings.Builder, r *Runner, n *Normalizer, sandbox string, args ...string) error {
	stdout, err := mustRun(r, n, sandbox, args...)
	if err != nil {
		return err
	}
	section(out, strings.Join(args, " "), stdout)
	return nil
}

// fileSection records the properties file as it is on disk.
func fileSection(out *strings.Builder, n *Normalizer, sandbox string) error {
	data, err := os.ReadFile(filepath.Join(sandbox, "app.properties"))
	if err != nil {
		return err
	}
	section(out, "app.properties", n.Normalize(string(data)))
	return nil
}

func writeSandboxFile(sandbox, name, content string) error {
	return os.WriteFile(filepath.Join(sandbox, name), []byte(content), 0644)
}
