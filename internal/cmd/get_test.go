package cmd

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"simpleprops/props"
)

func TestGet(t *testing.T) {
	app, out := setupTestApp(t, "db.host = localhost\n")

	if err := run(t, app, out, newGetCmd, "db.host"); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "localhost" {
		t.Errorf("get db.host = %q, want %q", got, "localhost")
	}
}

func TestGet_NotSet(t *testing.T) {
	app, out := setupTestApp(t, "")

	if err := run(t, app, out, newGetCmd, "missing"); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "missing (not set)" {
		t.Errorf("get missing = %q, want %q", got, "missing (not set)")
	}
}

func TestGet_Typed(t *testing.T) {
	app, out := setupTestApp(t, "port = 8080\nflag = True\n")

	if err := run(t, app, out, newGetCmd, "port", "--as", "int"); err != nil {
		t.Fatalf("get --as int failed: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "8080" {
		t.Errorf("get port = %q, want %q", got, "8080")
	}

	out.Reset()
	err := run(t, app, out, newGetCmd, "flag", "--as", "bool")
	var me *props.MappingError
	if !errors.As(err, &me) || me.Key != "flag" || me.Value != "True" {
		t.Errorf("get flag --as bool error = %v, want MappingError for flag/True", err)
	}
}

func TestGet_UnknownType(t *testing.T) {
	app, out := setupTestApp(t, "a = 1\n")
	err := run(t, app, out, newGetCmd, "a", "--as", "complex")
	if err == nil || !strings.Contains(err.Error(), "unknown type") {
		t.Errorf("error = %v, want unknown type", err)
	}
}

func TestGet_JSON(t *testing.T) {
	app, out := setupTestApp(t, "port = 8080\n")
	app.JSON = true

	if err := run(t, app, out, newGetCmd, "port", "--as", "int64"); err != nil {
		t.Fatal(err)
	}
	var result map[string]any
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("invalid JSON %q: %v", out.String(), err)
	}
	if result["key"] != "port" || result["value"] != float64(8080) || result["found"] != true {
		t.Errorf("result = %v", result)
	}
}
