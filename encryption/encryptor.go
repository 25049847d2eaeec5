package encryption

import (
	"fmt"
	"strings"
)

// Encryptor defines the interface for symmetric encryption and decryption.
type Encryptor interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// Algorithm represents supported encryption algorithms.
type Algorithm string

const (
	// AlgorithmAESGCM is AES-256-GCM.
	AlgorithmAESGCM Algorithm = "aes-256-gcm"

	// AlgorithmChaCha20 is ChaCha20-Poly1305, the default. It is fast on
	// mobile CPUs without AES instructions.
	AlgorithmChaCha20 Algorithm = "chacha20-poly1305"
)

// ParseAlgorithm maps a configuration value onto an Algorithm. Empty
// selects the default.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(strings.ToLower(strings.TrimSpace(s))) {
	case "", AlgorithmChaCha20:
		return AlgorithmChaCha20, nil
	case AlgorithmAESGCM:
		return AlgorithmAESGCM, nil
	default:
		return "", fmt.Errorf("encryption: unsupported algorithm %q", s)
	}
}

// Option configures the encryptor.
type Option func(*options)

type options struct {
	algorithm Algorithm
}

// WithAlgorithm selects the encryption algorithm (default: ChaCha20-Poly1305).
func WithAlgorithm(alg Algorithm) Option {
	return func(o *options) { o.algorithm = alg }
}

// New creates an Encryptor keyed by passphrase.
func New(passphrase string, opts ...Option) (Encryptor, error) {
	if passphrase == "" {
		return nil, fmt.Errorf("encryption: empty passphrase")
	}
	o := &options{algorithm: AlgorithmChaCha20}
	for _, opt := range opts {
		opt(o)
	}

	switch o.algorithm {
	case AlgorithmChaCha20:
		return newChaCha20(passphrase)
	case AlgorithmAESGCM:
		return newAESGCM(passphrase)
	default:
		return nil, fmt.Errorf("encryption: unsupported algorithm %q", o.algorithm)
	}
}
