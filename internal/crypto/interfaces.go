package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService owns every cryptographic primitive of the wallet keeper.
// It knows nothing about storage, networks or users; it only generates and
// protects key material.
//
//	Phrase    = GeneratePhrase()                     (account setup)
//	PINHash   = HashPIN(pin)                         (PIN configuration)
//	StoreKey  = DeriveStoreKey(deviceSecret, salt)   (secure store)
//	Blob      = Seal(StoreKey, value)                (secure store)
type KeyChainService interface {
	// GeneratePhrase returns a fresh 12-word BIP39 mnemonic. The phrase is
	// validated against the wordlist and checksum before it is returned.
	GeneratePhrase() ([]byte, error)

	// ValidatePhrase reports whether phrase is a well-formed BIP39 mnemonic.
	ValidatePhrase(phrase []byte) bool

	// HashPIN derives an Argon2id hash of pin with a random salt and returns
	// it in the self-describing "argon2id$salt$hash" form.
	HashPIN(pin string) (string, error)

	// VerifyPIN reports whether pin matches an encoded hash produced by
	// HashPIN. The comparison is constant-time.
	VerifyPIN(pin, encoded string) bool

	// DeriveStoreKey expands secret into a 256-bit sealing key via HKDF-SHA256.
	DeriveStoreKey(secret, salt []byte) ([]byte, error)

	// Seal encrypts plaintext with XChaCha20-Poly1305: blob = nonce ‖ ciphertext.
	Seal(key, plaintext []byte) ([]byte, error)

	// Open reverses Seal. It fails if the key is wrong or the blob was altered.
	Open(key, blob []byte) ([]byte, error)

	// SealLegacy encrypts plaintext with AES-256-GCM, the format of the
	// pre-migration key store.
	SealLegacy(key, plaintext []byte) ([]byte, error)

	// OpenLegacy reverses SealLegacy.
	OpenLegacy(key, blob []byte) ([]byte, error)

	// EqualSecret compares two secrets in constant time.
	EqualSecret(a, b []byte) bool
}
