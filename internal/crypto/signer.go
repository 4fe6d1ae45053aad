// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/openscilab/lab-auth-keeper/models"
)

// signerSalt domain-separates the link-signing key from every other use of
// the secret. The value is part of the wire format and must not change, or
// all outstanding links become invalid.
const signerSalt = "andpeppersinghiphop"

// tokenSigner is the private implementation of [TokenService].
//
// Wire format: base64url(payload JSON) "." base64url(HMAC-SHA256 signature).
// The signing key is derived as HMAC-SHA256(secret, signerSalt) so the raw
// secret is never used directly.
type tokenSigner struct {
	key []byte

	// now is swappable for tests.
	now func() time.Time
}

// NewTokenSigner constructs a [TokenService] signing with a key derived
// from secret.
func NewTokenSigner(secret string) TokenService {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(signerSalt))

	return &tokenSigner{
		key: mac.Sum(nil),
		now: time.Now,
	}
}

// Sign implements [TokenService]. The payload is copied before the expiry
// stamp is added, so the caller's map is not mutated.
func (s *tokenSigner) Sign(payload models.TokenPayload, ttl time.Duration) (string, error) {
	stamped := make(models.TokenPayload, len(payload)+1)
	for k, v := range payload {
		stamped[k] = v
	}
	stamped[models.TokenFieldExpire] = s.now().Add(ttl).Format(time.RFC3339Nano)

	body, err := json.Marshal(stamped)
	if err != nil {
		return "", fmt.Errorf("marshal token payload: %w", err)
	}

	encodedBody := base64.RawURLEncoding.EncodeToString(body)
	signature := s.sign(encodedBody)

	return encodedBody + "." + base64.RawURLEncoding.EncodeToString(signature), nil
}

// Unsign implements [TokenService]. The signature is checked before the
// payload is even parsed, so a forged token reveals nothing about the
// expected structure.
func (s *tokenSigner) Unsign(token string) (models.TokenPayload, error) {
	encodedBody, encodedSignature, found := strings.Cut(token, ".")
	if !found {
		return nil, ErrTokenMalformed
	}

	signature, err := base64.RawURLEncoding.DecodeString(encodedSignature)
	if err != nil {
		return nil, ErrTokenMalformed
	}

	if !hmac.Equal(signature, s.sign(encodedBody)) {
		return nil, ErrSignatureInvalid
	}

	body, err := base64.RawURLEncoding.DecodeString(encodedBody)
	if err != nil {
		return nil, ErrTokenMalformed
	}

	var payload models.TokenPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, ErrTokenMalformed
	}

	expire, err := time.Parse(time.RFC3339Nano, payload[models.TokenFieldExpire])
	if err != nil {
		return nil, ErrTokenMalformed
	}

	if s.now().After(expire) {
		return nil, ErrTokenExpired
	}

	return payload, nil
}

func (s *tokenSigner) sign(encodedBody string) []byte {
	mac := hmac.New(sha256.New, s.key)
	mac.Write([]byte(encodedBody))
	return mac.Sum(nil)
}
