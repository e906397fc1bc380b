// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

const (
	phraseEntropyBits = 128
	pinSaltLen        = 16
	pinHashPrefix     = "argon2id"
	storeKeyInfo      = "go-wallet-keeper/secure-store/v1"
)

var (
	ErrCiphertextTooShort = errors.New("ciphertext too short")
	ErrMalformedPINHash   = errors.New("malformed pin hash")
)

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. mobile vs. desktop).
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewKeyChainService constructs a [KeyChainService] with the Argon2id
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewKeyChainService() KeyChainService {
	return &keyChainService{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}
}

// NewFastKeyChainService returns a keychain with a small Argon2id memory
// cost. It is meant for tests only.
func NewFastKeyChainService() KeyChainService {
	return &keyChainService{
		argonTime:    1,
		argonMemory:  1024,
		argonThreads: 1,
		argonKeyLen:  32,
	}
}

// GeneratePhrase implements [KeyChainService].
func (k *keyChainService) GeneratePhrase() ([]byte, error) {
	entropy, err := bip39.NewEntropy(phraseEntropyBits)
	if err != nil {
		return nil, fmt.Errorf("generate entropy: %w", err)
	}

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return nil, fmt.Errorf("build mnemonic: %w", err)
	}

	phrase := []byte(mnemonic)
	if !k.ValidatePhrase(phrase) {
		return nil, errors.New("generated phrase failed validation")
	}

	return phrase, nil
}

// ValidatePhrase implements [KeyChainService].
func (k *keyChainService) ValidatePhrase(phrase []byte) bool {
	return bip39.IsMnemonicValid(strings.TrimSpace(string(phrase)))
}

// HashPIN implements [KeyChainService].
func (k *keyChainService) HashPIN(pin string) (string, error) {
	salt := make([]byte, pinSaltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", err
	}

	hash := k.pinKey(pin, salt)
	return strings.Join([]string{
		pinHashPrefix,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	}, "$"), nil
}

// VerifyPIN implements [KeyChainService].
func (k *keyChainService) VerifyPIN(pin, encoded string) bool {
	salt, want, err := decodePINHash(encoded)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare(k.pinKey(pin, salt), want) == 1
}

func (k *keyChainService) pinKey(pin string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(pin),
		salt,
		k.argonTime,
		k.argonMemory,
		k.argonThreads,
		k.argonKeyLen,
	)
}

func decodePINHash(encoded string) (salt, hash []byte, err error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 3 || parts[0] != pinHashPrefix {
		return nil, nil, ErrMalformedPINHash
	}

	if salt, err = base64.RawStdEncoding.DecodeString(parts[1]); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformedPINHash, err)
	}
	if hash, err = base64.RawStdEncoding.DecodeString(parts[2]); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformedPINHash, err)
	}

	return salt, hash, nil
}

// DeriveStoreKey implements [KeyChainService].
func (k *keyChainService) DeriveStoreKey(secret, salt []byte) ([]byte, error) {
	key := make([]byte, chacha20poly1305.KeySize)
	r := hkdf.New(sha256.New, secret, salt, []byte(storeKeyInfo))
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, fmt.Errorf("derive store key: %w", err)
	}
	return key, nil
}

// Seal implements [KeyChainService]. A random 24-byte nonce is prepended
// to the ciphertext.
func (k *keyChainService) Seal(key, plaintext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("create aead: %w", err)
	}

	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(plaintext)+aead.Overhead())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	return aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Open implements [KeyChainService].
func (k *keyChainService) Open(key, blob []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("create aead: %w", err)
	}

	if len(blob) < aead.NonceSize() {
		return nil, ErrCiphertextTooShort
	}
	nonce, ciphertext := blob[:aead.NonceSize()], blob[aead.NonceSize():]

	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("decryption failed: %w", err)
	}
	return plaintext, nil
}

// SealLegacy implements [KeyChainService]. blob = nonce (12 bytes) ‖ ciphertext.
func (k *keyChainService) SealLegacy(key, plaintext []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	// Prepend the nonce so OpenLegacy can split it out.
	return append(nonce, gcm.Seal(nil, nonce, plaintext, nil)...), nil
}

// OpenLegacy implements [KeyChainService].
func (k *keyChainService) OpenLegacy(key, blob []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return nil, ErrCiphertextTooShort
	}

	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("decryption failed: %w", err)
	}

	return plaintext, nil
}

// EqualSecret implements [KeyChainService].
func (k *keyChainService) EqualSecret(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
