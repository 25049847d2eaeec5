package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
)

// Sealer is an Encryptor backed by an AEAD cipher.
type Sealer struct {
	aead      cipher.AEAD
	algorithm Algorithm
}

func deriveKey(passphrase string) []byte {
	sum := sha256.Sum256([]byte(passphrase))
	return sum[:]
}

func newChaCha20(passphrase string) (*Sealer, error) {
	aead, err := chacha20poly1305.New(deriveKey(passphrase))
	if err != nil {
		return nil, fmt.Errorf("create chacha20: %w", err)
	}
	return &Sealer{aead: aead, algorithm: AlgorithmChaCha20}, nil
}

func newAESGCM(passphrase string) (*Sealer, error) {
	block, err := aes.NewCipher(deriveKey(passphrase))
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create GCM: %w", err)
	}
	return &Sealer{aead: gcm, algorithm: AlgorithmAESGCM}, nil
}

// Algorithm returns the cipher in use.
func (s *Sealer) Algorithm() Algorithm {
	return s.algorithm
}

// Encrypt encrypts plaintext and returns a base64-encoded result.
func (s *Sealer) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, s.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}
	ciphertext := s.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// Decrypt decrypts a base64-encoded ciphertext.
func (s *Sealer) Decrypt(ciphertext string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("decode base64: %w", err)
	}

	nonceSize := s.aead.NonceSize()
	if len(data) < nonceSize+s.aead.Overhead() {
		return "", fmt.Errorf("ciphertext too short")
	}

	plaintext, err := s.aead.Open(nil, data[:nonceSize], data[nonceSize:], nil)
	if err != nil {
		return "", fmt.Errorf("decrypt: %w", err)
	}
	return string(plaintext), nil
}
