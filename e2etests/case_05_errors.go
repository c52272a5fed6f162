package e2etests

import "strings"

func caseErrors(r *Runner, n *Normalizer, sandbox string) (string, error) {
	var out strings.Builder

	if err := writeSandboxFile(sandbox, "app.properties", "a = 1\na = 2\n"); err != nil {
		return "", err
	}
	sectionFailure(&out, n, "validate", r.Run(sandbox, "validate"))

	if err := writeSandboxFile(sandbox, "app.properties", "a = 1\njust text\n"); err != nil {
		return "", err
	}
	sectionFailure(&out, n, "list", r.Run(sandbox, "list"))

	if err := writeSandboxFile(sandbox, ".props.yaml", "cipher: rot13\nencoding: klingon\n"); err != nil {
		return "", err
	}
	sectionFailure(&out, n, "bad settings", r.Run(sandbox, "list"))

	return out.String(), nil
}
