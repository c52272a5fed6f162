package e2etests

import "strings"

func caseEncrypt(r *Runner, n *Normalizer, sandbox string) (string, error) {
	var out strings.Builder

	if err := writeSandboxFile(sandbox, ".props.yaml", "encrypt: true\ncipher: xchacha20\n"); err != nil {
		return "", err
	}

	if err := step(&out, r, n, sandbox, "set", "api.token", "abc123"); err != nil {
		return "", err
	}
	if err := fileSection(&out, n, sandbox); err != nil {
		return "", err
	}
	if err := step(&out, r, n, sandbox, "get", "api.token"); err != nil {
		return "", err
	}

	// Without the encrypt setting the stored form is returned as is.
	if err := writeSandboxFile(sandbox, ".props.yaml", "encrypt: false\n"); err != nil {
		return "", err
	}
	if err := step(&out, r, n, sandbox, "get", "api.token"); err != nil {
		return "", err
	}

	return out.String(), nil
}
