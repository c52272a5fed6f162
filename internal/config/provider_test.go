package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolvePaths_RelativeToSettings(t *testing.T) {
	t.Setenv(EnvFile, "")
	dir := t.TempDir()
	settings := filepath.Join(dir, ".props.yaml")
	if err := os.WriteFile(settings, []byte("file: conf/app.properties\n"), 0644); err != nil {
		t.Fatal(err)
	}

	paths, s, err := ResolvePaths(settings, "")
	if err != nil {
		t.Fatalf("ResolvePaths: %v", err)
	}
	want := filepath.Join(dir, "conf", "app.properties")
	if paths.File != want || s.File != want {
		t.Errorf("File = %q / %q, want %q", paths.File, s.File, want)
	}
	if paths.SettingsFile != settings {
		t.Errorf("SettingsFile = %q, want %q", paths.SettingsFile, settings)
	}
}

func TestResolvePaths_FlagWins(t *testing.T) {
	t.Setenv(EnvFile, "env.properties")
	dir := t.TempDir()

	paths, _, err := ResolvePaths(filepath.Join(dir, ".props.yaml"), "flag.properties")
	if err != nil {
		t.Fatal(err)
	}
	if paths.File != "flag.properties" {
		t.Errorf("File = %q, want %q", paths.File, "flag.properties")
	}
}

func TestResolvePaths_EnvOverridesSettings(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvFile, filepath.Join(dir, "env.properties"))

	paths, _, err := ResolvePaths(filepath.Join(dir, ".props.yaml"), "")
	if err != nil {
		t.Fatal(err)
	}
	if paths.File != filepath.Join(dir, "env.properties") {
		t.Errorf("File = %q, want env.properties in %s", paths.File, dir)
	}
}

func TestResolvePaths_ReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvFile, "")
	os.Unsetenv(EnvFile)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(EnvFile+"=dotenv.properties\n"), 0644); err != nil {
		t.Fatal(err)
	}

	paths, _, err := ResolvePaths(filepath.Join(dir, ".props.yaml"), "")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "dotenv.properties"); paths.File != want {
		t.Errorf("File = %q, want %q", paths.File, want)
	}
}
