package cmd

import (
	"errors"
	"strings"
	"testing"

	"simpleprops/props"
)

func TestCommentAdd_Append(t *testing.T) {
	app, out := setupTestApp(t, "a = 1\n")

	if err := run(t, app, out, newCommentAddCmd, "trailing"); err != nil {
		t.Fatalf("comment add failed: %v", err)
	}
	if got := readFile(t, app); got != "a = 1\n# trailing\n" {
		t.Errorf("file = %q", got)
	}
	if !strings.Contains(out.String(), "line 2") {
		t.Errorf("output = %q, want line 2", out.String())
	}
}

func TestCommentAdd_At(t *testing.T) {
	app, out := setupTestApp(t, "a = 1\n")

	if err := run(t, app, out, newCommentAddCmd, "header", "--at", "0"); err != nil {
		t.Fatal(err)
	}
	if got := readFile(t, app); got != "# header\na = 1\n" {
		t.Errorf("file = %q", got)
	}
}

func TestCommentAdd_AtOutOfRange(t *testing.T) {
	app, out := setupTestApp(t, "a = 1\n")
	if err := run(t, app, out, newCommentAddCmd, "x", "--at", "5"); err == nil {
		t.Error("comment add --at 5 succeeded on a one-line file")
	}
	if got := readFile(t, app); got != "a = 1\n" {
		t.Errorf("file = %q after failed add", got)
	}
}

func TestCommentAdd_Before(t *testing.T) {
	app, out := setupTestApp(t, "a = 1\nb = 2\n")

	if err := run(t, app, out, newCommentAddCmd, "about b", "--before", "b"); err != nil {
		t.Fatal(err)
	}
	if got := readFile(t, app); got != "a = 1\n# about b\nb = 2\n" {
		t.Errorf("file = %q", got)
	}

	if err := run(t, app, out, newCommentAddCmd, "x", "--before", "missing"); err == nil {
		t.Error("comment add --before missing succeeded")
	}
}

func TestCommentRemove(t *testing.T) {
	app, out := setupTestApp(t, "# note\na = 1\n# note\n# other\n")

	if err := run(t, app, out, newCommentRemoveCmd, " note"); err != nil {
		t.Fatal(err)
	}
	if got := readFile(t, app); got != "a = 1\n# other\n" {
		t.Errorf("file = %q", got)
	}

	out.Reset()
	if err := run(t, app, out, newCommentRemoveCmd, " note"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "No comment") {
		t.Errorf("output = %q", out.String())
	}
}

func TestCommentStrip(t *testing.T) {
	app, out := setupTestApp(t, "# one\na = 1\n\n# two\nb = 2\n")

	if err := run(t, app, out, newCommentStripCmd); err != nil {
		t.Fatal(err)
	}
	if got := readFile(t, app); got != "a = 1\n\nb = 2\n" {
		t.Errorf("file = %q", got)
	}
}

func TestCommentAdd_RejectsMultiLine(t *testing.T) {
	app, out := setupTestApp(t, "a = 1\n")
	if err := run(t, app, out, newCommentAddCmd, "one\ntwo"); !errors.Is(err, props.ErrInvalidArgument) {
		t.Errorf("comment add error = %v, want ErrInvalidArgument", err)
	}
	if got := readFile(t, app); got != "a = 1\n" {
		t.Errorf("file = %q after rejected comment", got)
	}
}
