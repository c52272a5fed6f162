// Package config handles settings for the props command: which file it
// operates on, the file's character encoding, and how encrypted values are
// keyed.
package config

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"

	"simpleprops/props"
	"simpleprops/props/encrypt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"gopkg.in/yaml.v3"
)

// Cipher names accepted in Settings.Cipher.
const (
	CipherAES       = "aes-gcm"
	CipherXChaCha20 = "xchacha20"
)

// ErrNoKey is returned when encryption is enabled but no key material is
// available in the environment.
var ErrNoKey = errors.New("no encryption key available")

// Settings represents the contents of .props.yaml.
type Settings struct {
	File          string `yaml:"file"`
	Encoding      string `yaml:"encoding"`
	Encrypt       bool   `yaml:"encrypt"`
	Cipher        string `yaml:"cipher"`
	KeyEnv        string `yaml:"key_env"`
	PassphraseEnv string `yaml:"passphrase_env"`
	Salt          string `yaml:"salt,omitempty"`
}

// Default returns the default settings.
func Default() Settings {
	return Settings{
		File:          "app.properties",
		Encoding:      "utf-8",
		Cipher:        CipherAES,
		KeyEnv:        "PROPS_KEY",
		PassphraseEnv: "PROPS_PASSPHRASE",
	}
}

// Load reads settings from path and applies defaults for missing fields.
// A missing file yields the defaults. Environment variables in File are
// expanded.
func Load(path string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			s.File = os.ExpandEnv(s.File)
			return s, nil
		}
		return Settings{}, fmt.Errorf("reading settings: %w", err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parsing settings: %w", err)
	}
	ApplyDefaults(&s)
	s.File = os.ExpandEnv(s.File)

	return s, nil
}

// Write writes s to path.
func Write(path string, s Settings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}

// Charset returns the character encoding named by s.Encoding. UTF-8 is
// reported as nil, which props treats as UTF-8 with optional byte order
// mark.
func (s Settings) Charset() (encoding.Encoding, error) {
	name := strings.ToLower(strings.TrimSpace(s.Encoding))
	if name == "" || name == "utf-8" || name == "utf8" {
		return nil, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q", s.Encoding)
	}
	return enc, nil
}

// Transforms returns the value transforms implied by s, reading key
// material from the environment. It returns nil when encryption is off.
func (s Settings) Transforms() ([]props.Transform, error) {
	if !s.Encrypt {
		return nil, nil
	}
	key, err := s.key()
	if err != nil {
		return nil, err
	}

	var t *encrypt.Transform
	switch s.Cipher {
	case CipherAES, "":
		t, err = encrypt.NewAES(key)
	case CipherXChaCha20:
		t, err = encrypt.NewXChaCha20(key)
	default:
		return nil, fmt.Errorf("unknown cipher %q", s.Cipher)
	}
	if err != nil {
		return nil, err
	}
	return []props.Transform{t}, nil
}

// key prefers a base64 key in KeyEnv and falls back to deriving one from
// the passphrase in PassphraseEnv.
func (s Settings) key() ([]byte, error) {
	if s.KeyEnv != "" {
		if v := os.Getenv(s.KeyEnv); v != "" {
			key, err := base64.StdEncoding.DecodeString(strings.TrimSpace(v))
			if err != nil {
				return nil, fmt.Errorf("decoding %s: %w", s.KeyEnv, err)
			}
			return key, nil
		}
	}
	if s.PassphraseEnv != "" && s.Salt != "" {
		if v := os.Getenv(s.PassphraseEnv); v != "" {
			return encrypt.KeyFromPassphrase(v, []byte(s.Salt)), nil
		}
	}
	return nil, fmt.Errorf("set %s or %s: %w", s.KeyEnv, s.PassphraseEnv, ErrNoKey)
}
