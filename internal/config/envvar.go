package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Environment variable names for props configuration.
const (
	EnvFile     = "PROPS_FILE"     // Override the properties file
	EnvEncoding = "PROPS_ENCODING" // Override the file encoding
	EnvEncrypt  = "PROPS_ENCRYPT"  // Enable encryption ("1" or "true")
)

// ApplyEnvOverrides checks PROPS_FILE, PROPS_ENCODING and PROPS_ENCRYPT and
// overrides the corresponding settings in memory.
func ApplyEnvOverrides(s *Settings) {
	if file := os.Getenv(EnvFile); file != "" {
		s.File = file
	}
	if enc := os.Getenv(EnvEncoding); enc != "" {
		s.Encoding = enc
	}
	if v := os.Getenv(EnvEncrypt); v == "1" || v == "true" {
		s.Encrypt = true
	}
}

// LoadDotEnv loads dir/.env into the process environment without
// overriding variables that are already set. A missing file is not an
// error.
func LoadDotEnv(dir string) error {
	err := godotenv.Load(filepath.Join(dir, ".env"))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
