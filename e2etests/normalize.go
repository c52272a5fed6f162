package e2etests

import (
	"regexp"
	"strings"
)

// Normalizer rewrites output that differs between runs.
type Normalizer struct {
	sandbox string
}

// NewNormalizer creates a Normalizer for output produced in sandbox.
func NewNormalizer(sandbox string) *Normalizer {
	return &Normalizer{sandbox: sandbox}
}

// Encrypted values use a fresh nonce on every write.
var encryptedPattern = regexp.MustCompile(`\{enc\}[A-Za-z0-9+/=]+`)

// Normalize replaces the sandbox path with $SANDBOX and ciphertext with a
// placeholder, and drops trailing newlines.
func (n *Normalizer) Normalize(s string) string {
	s = strings.ReplaceAll(s, n.sandbox, "$SANDBOX")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = encryptedPattern.ReplaceAllString(s, "{enc}CIPHERTEXT")
	return strings.TrimRight(s, "\n")
}
