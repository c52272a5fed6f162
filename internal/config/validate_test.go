package config

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Settings)
		wantErr string
	}{
		{"defaults", func(*Settings) {}, ""},
		{"empty file", func(s *Settings) { s.File = " " }, "file:"},
		{"bad encoding", func(s *Settings) { s.Encoding = "nope" }, "encoding:"},
		{"bad cipher", func(s *Settings) { s.Cipher = "rot13" }, "cipher:"},
		{"encrypt without key source", func(s *Settings) {
			s.Encrypt = true
			s.KeyEnv = ""
			s.PassphraseEnv = ""
		}, "encrypt:"},
		{"passphrase without salt", func(s *Settings) {
			s.Encrypt = true
			s.KeyEnv = ""
			s.Salt = "short"
		}, "salt:"},
		{"passphrase with salt", func(s *Settings) {
			s.Encrypt = true
			s.KeyEnv = ""
			s.Salt = "long-enough-salt"
		}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.modify(&s)
			err := Validate(s)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	s := Default()
	s.Encoding = "nope"
	s.Cipher = "rot13"

	err := Validate(s)
	if err == nil {
		t.Fatal("Validate succeeded")
	}
	for _, want := range []string{"encoding:", "cipher:"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate error %q missing %q", err, want)
		}
	}
}
