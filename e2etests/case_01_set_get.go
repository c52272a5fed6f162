package e2etests

import "strings"

func caseSetGet(r *Runner, n *Normalizer, sandbox string) (string, error) {
	var out strings.Builder

	for _, args := range [][]string{
		{"set", "db.host", "localhost"},
		{"set", "db.port", "5432"},
		{"get", "db.host"},
		{"get", "db.port", "--as", "int"},
		{"get", "missing"},
		{"set", "db.host", "example.com"},
		{"list"},
	} {
		if err := step(&out, r, n, sandbox, args...); err != nil {
			return "", err
		}
	}
	if err := fileSection(&out, n, sandbox); err != nil {
		return "", err
	}

	if err := step(&out, r, n, sandbox, "unset", "db.port"); err != nil {
		return "", err
	}
	result := r.RunJSON(sandbox, "get", "db.port")
	section(&out, "get db.port --json", n.Normalize(result.Stdout))

	return out.String(), nil
}
