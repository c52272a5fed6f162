// Package e2etests runs the props binary against sandbox directories and
// compares its output with recorded expectations.
package e2etests

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// TestKey is the base64 encryption key the runner puts in PROPS_KEY.
const TestKey = "AQEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQEBAQE="

// Runner executes props commands inside a sandbox directory.
type Runner struct {
	PropsCmd string // path to props binary
}

// SetupSandbox creates a fresh, empty working directory.
// Returns the sandbox path.
func (r *Runner) SetupSandbox() (string, error) {
	dir, err := os.MkdirTemp("", "props-e2e-")
	if err != nil {
		return "", fmt.Errorf("setup sandbox failed: %v", err)
	}
	// The binary sees the resolved path when the temp dir is a symlink.
	if resolved, err := filepath.EvalSymlinks(dir); err == nil {
		dir = resolved
	}
	return dir, nil
}

// TeardownSandbox removes a sandbox directory.
func (r *Runner) TeardownSandbox(path string) error {
	return os.RemoveAll(path)
}

// RunResult holds the output of a command execution.
type RunResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Run executes a props command with the sandbox as working directory, so
// the default .props.yaml and app.properties live in the sandbox.
// PROPS_* variables from the caller's environment are dropped.
func (r *Runner) Run(sandbox string, args ...string) RunResult {
	cmd := exec.Command(r.PropsCmd, args...)
	cmd.Dir = sandbox
	cmd.Env = append(cleanEnv(), "PROPS_KEY="+TestKey)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			exitCode = -1
		}
	}

	return RunResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// RunJSON executes a props command with --json appended.
func (r *Runner) RunJSON(sandbox string, args ...string) RunResult {
	fullArgs := append(args, "--json")
	return r.Run(sandbox, fullArgs...)
}

func cleanEnv() []string {
	var env []string
	for _, kv := range os.Environ() {
		if !strings.HasPrefix(kv, "PROPS_") {
			env = append(env, kv)
		}
	}
	return env
}
