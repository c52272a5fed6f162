package e2etests

import "strings"

func caseComments(r *Runner, n *Normalizer, sandbox string) (string, error) {
	var out strings.Builder

	if err := writeSandboxFile(sandbox, "app.properties", "a=1\n   #note\n\nb   =   two words\n"); err != nil {
		return "", err
	}

	if err := step(&out, r, n, sandbox, "fmt"); err != nil {
		return "", err
	}
	if err := fileSection(&out, n, sandbox); err != nil {
		return "", err
	}

	for _, args := range [][]string{
		{"comment", "add", "Database settings", "--at", "0"},
		{"comment", "add", "about b", "--before", "b"},
		{"list", "--all"},
		{"comment", "remove", " note"},
		{"comment", "strip"},
	} {
		if err := step(&out, r, n, sandbox, args...); err != nil {
			return "", err
		}
	}
	if err := fileSection(&out, n, sandbox); err != nil {
		return "", err
	}

	return out.String(), nil
}
