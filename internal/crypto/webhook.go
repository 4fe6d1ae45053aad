// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"crypto/hmac"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// digestSeparator splits the JSON body from its digest on the wire. The
// sequence cannot appear in a hex digest and is vanishingly unlikely in a
// compact JSON body.
const digestSeparator = ":::"

// webhookCodec is the private implementation of [WebhookCodec].
//
// Wire format: base64(body ":::" hex(BLAKE2b-128(key, body))) where body
// is the compact JSON serialization of the payload. Peers produce standard
// padded base64, so that alphabet is fixed.
type webhookCodec struct {
	key []byte
}

// NewWebhookCodec constructs a [WebhookCodec] keyed with the shared
// deployment secret. BLAKE2b caps keys at 64 bytes; longer secrets are
// truncated to stay within the limit.
func NewWebhookCodec(deploymentKey string) WebhookCodec {
	key := []byte(deploymentKey)
	if len(key) > blake2b.Size {
		key = key[:blake2b.Size]
	}

	return &webhookCodec{key: key}
}

// Encode implements [WebhookCodec].
func (c *webhookCodec) Encode(payload any) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal webhook payload: %w", err)
	}

	digest, err := c.digest(body)
	if err != nil {
		return "", err
	}

	wire := string(body) + digestSeparator + digest
	return base64.StdEncoding.EncodeToString([]byte(wire)), nil
}

// Decode implements [WebhookCodec].
func (c *webhookCodec) Decode(encoded string, target any) error {
	wire, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return fmt.Errorf("decode webhook payload: %w", err)
	}

	body, digest, found := strings.Cut(string(wire), digestSeparator)
	if !found {
		return ErrDigestMismatch
	}

	expected, err := c.digest([]byte(body))
	if err != nil {
		return err
	}

	if !hmac.Equal([]byte(digest), []byte(expected)) {
		return ErrDigestMismatch
	}

	if err := json.Unmarshal([]byte(body), target); err != nil {
		return fmt.Errorf("unmarshal webhook payload: %w", err)
	}

	return nil
}

// digest computes hex(BLAKE2b-128(key, body)). The 16-byte digest size
// matches the webhook consumers deployed across the platform.
func (c *webhookCodec) digest(body []byte) (string, error) {
	h, err := blake2b.New(16, c.key)
	if err != nil {
		return "", fmt.Errorf("create digest: %w", err)
	}
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil)), nil
}
