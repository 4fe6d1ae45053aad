// SPDX-License-Identifier: Apache-2.0

// Package crypto implements the cryptographic primitives of the engine:
// signed time-limited tokens for self-service links, the sealed envelope
// used for cross-service JSON exchange, the keyed digest scheme of the
// deauthorization webhook, and password hashing.
package crypto

import (
	"time"

	"github.com/openscilab/lab-auth-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// TokenService signs and verifies the time-limited tokens embedded in
// self-service links (account approval, password reset, MFA reset).
//
// A token carries a small string map as payload. The expiry timestamp is
// written into the payload at signing time and checked at verification
// time, so a token is self-contained and requires no server-side state.
type TokenService interface {
	// Sign serializes payload, stamps it with an expiry ttl from now, and
	// appends a keyed signature. The returned token is URL-safe.
	Sign(payload models.TokenPayload, ttl time.Duration) (string, error)

	// Unsign verifies the token's signature and expiry and returns the
	// embedded payload. Returns ErrTokenMalformed, ErrSignatureInvalid,
	// or ErrTokenExpired on failure.
	Unsign(token string) (models.TokenPayload, error)
}

// EnvelopeService seals and opens the encrypted JSON envelope shared by all
// services of a deployment. The envelope both authenticates the producer
// and hides the payload from intermediaries.
type EnvelopeService interface {
	// Seal wraps data in a signed claim set and encrypts it with the
	// deployment key. The result is a URL-safe string.
	Seal(data any) (string, error)

	// Open decrypts a sealed envelope, verifies the inner signature, and
	// unmarshals the payload into target (a non-nil pointer). Returns
	// ErrDecryptionFailed if the envelope cannot be authenticated.
	Open(sealed string, target any) error
}

// WebhookCodec encodes and decodes the digest-protected payloads of the
// deauthorization webhook.
type WebhookCodec interface {
	// Encode marshals payload to JSON, appends a keyed digest, and
	// returns the base64 wire form.
	Encode(payload any) (string, error)

	// Decode reverses Encode, verifying the digest before unmarshalling
	// into target. Returns ErrDigestMismatch if the digest does not
	// match the body.
	Decode(encoded string, target any) error
}
