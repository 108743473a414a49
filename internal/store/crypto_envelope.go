package store

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"decoder/internal/domain"
)

// sealedFormatVersion is the current version of the sealed state file.
const sealedFormatVersion = 1

// sealed is the on-disk JSON structure holding the ciphertext and KDF parameters.
type sealed struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Cipher []byte `json:"cipher"`
}

// Tunables for scrypt key derivation.
func scryptParams() (N, r, p int) { return 1 << 15, 8, 1 }

// seal derives a key from passphrase and encrypts raw into a JSON envelope.
func seal(passphrase string, raw []byte) ([]byte, error) {
	N, r, p := scryptParams()
	var salt [16]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return nil, err
	}
	key, err := scrypt.Key([]byte(passphrase), salt[:], N, r, p, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer wipe(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	// A fresh salt per write yields a fresh key, so a zero nonce is never reused.
	var nonce [chacha20poly1305.NonceSize]byte
	ct := aead.Seal(nil, nonce[:], raw, salt[:])

	return json.Marshal(sealed{
		V:      sealedFormatVersion,
		Salt:   salt[:],
		N:      N,
		R:      r,
		P:      p,
		Cipher: ct,
	})
}

// open decrypts an envelope produced by seal.
func open(passphrase string, b []byte) ([]byte, error) {
	var env sealed
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, err
	}
	if env.V > sealedFormatVersion {
		return nil, fmt.Errorf("unsupported sealed state version %d", env.V)
	}

	key, err := scrypt.Key([]byte(passphrase), env.Salt, env.N, env.R, env.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer wipe(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte
	pt, err := aead.Open(nil, nonce[:], env.Cipher, env.Salt)
	if err != nil {
		return nil, domain.ErrWrongPassphrase
	}
	return pt, nil
}

// wipe overwrites b with zeros.
func wipe(b []byte) {
	subtle.ConstantTimeCopy(1, b, make([]byte, len(b)))
}
