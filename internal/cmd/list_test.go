package cmd

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestList(t *testing.T) {
	app, out := setupTestApp(t, "b = 2\n# c\na = 1\n")

	if err := run(t, app, out, newListCmd); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if got, want := out.String(), "b = 2\na = 1\n"; got != want {
		t.Errorf("list = %q, want %q (file order)", got, want)
	}
}

func TestList_All(t *testing.T) {
	app, out := setupTestApp(t, "b = 2\n# c\n\na=1\n")

	if err := run(t, app, out, newListCmd, "--all"); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "b = 2\n# c\n\na = 1\n"; got != want {
		t.Errorf("list --all = %q, want %q", got, want)
	}
}

func TestList_Empty(t *testing.T) {
	app, out := setupTestApp(t, "")
	if err := run(t, app, out, newListCmd); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(out.String()); got != "No properties set" {
		t.Errorf("list = %q", got)
	}
}

func TestList_JSON(t *testing.T) {
	app, out := setupTestApp(t, "b = 2\na = 1\n")
	app.JSON = true

	if err := run(t, app, out, newListCmd); err != nil {
		t.Fatal(err)
	}
	var got []propertyJSON
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", out.String(), err)
	}
	if len(got) != 2 || got[0] != (propertyJSON{"b", "2"}) || got[1] != (propertyJSON{"a", "1"}) {
		t.Errorf("list --json = %+v", got)
	}
}
