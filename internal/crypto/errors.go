package crypto

import "errors"

var (
	// ErrTokenMalformed is returned when a token cannot be decoded into its
	// payload and signature parts.
	ErrTokenMalformed = errors.New("token is malformed")

	// ErrSignatureInvalid is returned when a token's signature does not
	// match its payload.
	ErrSignatureInvalid = errors.New("token signature is invalid")

	// ErrTokenExpired is returned when a token's signature is valid but its
	// expiry timestamp has passed.
	ErrTokenExpired = errors.New("token has expired")

	// ErrDecryptionFailed is returned when a sealed envelope cannot be
	// decrypted or its inner signature does not verify.
	ErrDecryptionFailed = errors.New("envelope decryption failed")

	// ErrDigestMismatch is returned when a webhook payload's keyed digest
	// does not match its body.
	ErrDigestMismatch = errors.New("payload digest mismatch")
)
