package e2etests

import "strings"

func caseExportImport(r *Runner, n *Normalizer, sandbox string) (string, error) {
	var out strings.Builder

	if err := writeSandboxFile(sandbox, "app.properties", "# database\ndb.host = localhost\n\nport = 8080\n"); err != nil {
		return "", err
	}
	if err := step(&out, r, n, sandbox, "export", "--format", "json"); err != nil {
		return "", err
	}

	if err := writeSandboxFile(sandbox, "in.yaml", "server:\n  port: 9090\ndebug: true\n"); err != nil {
		return "", err
	}
	if err := step(&out, r, n, sandbox, "import", "in.yaml"); err != nil {
		return "", err
	}
	if err := fileSection(&out, n, sandbox); err != nil {
		return "", err
	}

	return out.String(), nil
}
