// Package encrypt provides a props.Transform that keeps property values
// encrypted at rest.
//
// Stored values carrying the Prefix are decrypted on load; values without
// it are passed through, so a plain-text file can be encrypted by loading
// and saving it once. On save every value is encrypted.
//
// The stored form is Prefix followed by the standard base64 encoding of
// nonce || ciphertext. The property key is bound as additional data, so a
// ciphertext copied to another key fails to decrypt.
//
// Every write draws a fresh nonce, so saving an unchanged store twice
// produces different bytes. The decrypted contents are identical.
package encrypt

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"

	"simpleprops/props"
)

// Prefix marks an encrypted value.
const Prefix = "{enc}"

var (
	// ErrInvalidKey is returned for key material of the wrong size.
	ErrInvalidKey = errors.New("invalid key")

	// ErrDecrypt is returned when a value carries the prefix but cannot be
	// decoded or authenticated.
	ErrDecrypt = errors.New("cannot decrypt value")
)

// Transform encrypts property values with an AEAD cipher.
type Transform struct {
	aead cipher.AEAD
	rand io.Reader
}

// Option configures a Transform.
type Option func(*Transform)

// WithRandom sets the source of nonces. It defaults to crypto/rand.
func WithRandom(r io.Reader) Option {
	return func(t *Transform) {
		t.rand = r
	}
}

// New returns a Transform using aead.
func New(aead cipher.AEAD, opts ...Option) *Transform {
	t := &Transform{aead: aead, rand: rand.Reader}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewAES returns a Transform using AES-GCM. key must be 16, 24 or 32 bytes.
func NewAES(key []byte, opts ...Option) (*Transform, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return New(aead, opts...), nil
}

// NewXChaCha20 returns a Transform using XChaCha20-Poly1305. key must be
// 32 bytes.
func NewXChaCha20(key []byte, opts ...Option) (*Transform, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return New(aead, opts...), nil
}

// KeySize is the size of keys produced by GenerateKey and KeyFromPassphrase.
const KeySize = 32

// GenerateKey returns a random key of KeySize bytes.
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, err
	}
	return key, nil
}

// KeyFromPassphrase derives a KeySize key from a passphrase with Argon2id.
func KeyFromPassphrase(passphrase string, salt []byte) []byte {
	return argon2.IDKey([]byte(passphrase), salt, 1, 64*1024, 4, KeySize)
}

// OnPropertyRead decrypts values carrying the Prefix.
func (t *Transform) OnPropertyRead(key, stored string) (string, error) {
	payload, ok := strings.CutPrefix(stored, Prefix)
	if !ok {
		return stored, nil
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecrypt, err)
	}
	n := t.aead.NonceSize()
	if len(raw) < n {
		return "", fmt.Errorf("%w: payload too short", ErrDecrypt)
	}
	plain, err := t.aead.Open(nil, raw[:n], raw[n:], []byte(key))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecrypt, err)
	}
	return string(plain), nil
}

// OnPropertyWrite encrypts value and adds the Prefix.
func (t *Transform) OnPropertyWrite(key, value string) (string, error) {
	nonce := make([]byte, t.aead.NonceSize(), t.aead.NonceSize()+len(value)+t.aead.Overhead())
	if _, err := io.ReadFull(t.rand, nonce); err != nil {
		return "", fmt.Errorf("generating nonce: %w", err)
	}
	sealed := t.aead.Seal(nonce, nonce, []byte(value), []byte(key))
	return Prefix + base64.StdEncoding.EncodeToString(sealed), nil
}

var _ props.Transform = (*Transform)(nil)
