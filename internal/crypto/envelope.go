// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"github.com/golang-jwt/jwt/v5"
)

// envelopeService is the private implementation of [EnvelopeService].
//
// Sealing is two layers: the payload is first wrapped in an HS256-signed
// claim set under the "data" claim, then the compact serialization is
// encrypted with AES-256-GCM. Both layers are keyed from the same
// deployment secret, so possession of the secret is required to produce
// or read an envelope. A random 12-byte nonce is prepended to the
// ciphertext: blob = nonce ‖ ciphertext.
type envelopeService struct {
	signKey []byte
	aesKey  []byte
}

// NewEnvelopeService constructs an [EnvelopeService] keyed with the shared
// deployment secret. The AES key is SHA-256(deploymentKey) so any secret
// length yields a valid 256-bit cipher key.
func NewEnvelopeService(deploymentKey string) EnvelopeService {
	aesKey := sha256.Sum256([]byte(deploymentKey))

	return &envelopeService{
		signKey: []byte(deploymentKey),
		aesKey:  aesKey[:],
	}
}

// Seal implements [EnvelopeService].
func (e *envelopeService) Seal(data any) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"data": data,
	})

	signed, err := token.SignedString(e.signKey)
	if err != nil {
		return "", fmt.Errorf("sign envelope claims: %w", err)
	}

	block, err := aes.NewCipher(e.aesKey)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("create gcm: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext := gcm.Seal(nil, nonce, []byte(signed), nil)
	blob := append(nonce, ciphertext...)

	return base64.RawURLEncoding.EncodeToString(blob), nil
}

// Open implements [EnvelopeService]. All failure modes (bad encoding, wrong
// key, corrupted ciphertext, forged inner signature) collapse into
// ErrDecryptionFailed so a peer probing the endpoint learns nothing about
// which layer rejected it.
func (e *envelopeService) Open(sealed string, target any) error {
	blob, err := base64.RawURLEncoding.DecodeString(sealed)
	if err != nil {
		return ErrDecryptionFailed
	}

	block, err := aes.NewCipher(e.aesKey)
	if err != nil {
		return fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return fmt.Errorf("create gcm: %w", err)
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return ErrDecryptionFailed
	}
	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	signed, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return ErrDecryptionFailed
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(string(signed), claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return e.signKey, nil
	})
	if err != nil || !parsed.Valid {
		return ErrDecryptionFailed
	}

	data, ok := claims["data"]
	if !ok {
		return ErrDecryptionFailed
	}

	// Re-marshal the claim so the caller can decode into a typed struct.
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal envelope data: %w", err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("unmarshal envelope data: %w", err)
	}

	return nil
}
