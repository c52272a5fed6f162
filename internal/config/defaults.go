package config

// DefaultSettingsFile is the settings file looked up in the working
// directory when no --config flag is given.
const DefaultSettingsFile = ".props.yaml"

// ApplyDefaults fills empty fields of s with their default values.
func ApplyDefaults(s *Settings) {
	d := Default()
	if s.File == "" {
		s.File = d.File
	}
	if s.Encoding == "" {
		s.Encoding = d.Encoding
	}
	if s.Cipher == "" {
		s.Cipher = d.Cipher
	}
	if s.KeyEnv == "" {
		s.KeyEnv = d.KeyEnv
	}
	if s.PassphraseEnv == "" {
		s.PassphraseEnv = d.PassphraseEnv
	}
}
