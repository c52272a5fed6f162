package config

import (
	"fmt"
	"strings"
)

// minSaltLen is the shortest salt accepted for passphrase-derived keys.
const minSaltLen = 8

// Validate checks s and returns an error describing every problem found,
// or nil if the settings are usable.
func Validate(s Settings) error {
	var errs []string

	if strings.TrimSpace(s.File) == "" {
		errs = append(errs, "file: must not be empty")
	}
	if _, err := s.Charset(); err != nil {
		errs = append(errs, fmt.Sprintf("encoding: %v", err))
	}

	switch s.Cipher {
	case CipherAES, CipherXChaCha20, "":
	default:
		errs = append(errs, fmt.Sprintf(
			"cipher: invalid value %q (allowed: %s, %s)", s.Cipher, CipherAES, CipherXChaCha20))
	}

	if s.Encrypt {
		if s.KeyEnv == "" && s.PassphraseEnv == "" {
			errs = append(errs, "encrypt: key_env or passphrase_env is required")
		}
		if s.KeyEnv == "" && s.PassphraseEnv != "" && len(s.Salt) < minSaltLen {
			errs = append(errs, fmt.Sprintf(
				"salt: must be at least %d characters when using passphrase_env", minSaltLen))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("settings validation failed:\n  %s", strings.Join(errs, "\n  "))
}
