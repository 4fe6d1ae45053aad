package crypto

import (
	"testing"

	"github.com/openscilab/lab-auth-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelope_RoundTrip(t *testing.T) {
	e := NewEnvelopeService("deployment_secret")

	in := models.Email{
		To:       models.EmailAddress{Username: "rincewind", Email: "r@uu.example.org"},
		From:     models.EmailAddress{Email: "do-not-reply@uu.example.org"},
		Subject:  "Account created",
		HTMLBody: "<p>welcome</p>",
	}

	sealed, err := e.Seal(in)
	require.NoError(t, err)
	require.NotEmpty(t, sealed)

	var out models.Email
	require.NoError(t, e.Open(sealed, &out))
	assert.Equal(t, in, out)
}

func TestEnvelope_OpaqueOnTheWire(t *testing.T) {
	e := NewEnvelopeService("deployment_secret")

	sealed, err := e.Seal(map[string]string{"username": "rincewind"})
	require.NoError(t, err)

	// the plaintext must not leak through the sealed form
	assert.NotContains(t, sealed, "rincewind")
	assert.NotContains(t, sealed, "username")
}

func TestEnvelope_WrongKey(t *testing.T) {
	sealer := NewEnvelopeService("deployment_secret")
	opener := NewEnvelopeService("other_secret")

	sealed, err := sealer.Seal(map[string]string{"k": "v"})
	require.NoError(t, err)

	var out map[string]string
	err = opener.Open(sealed, &out)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestEnvelope_TamperedCiphertext(t *testing.T) {
	e := NewEnvelopeService("deployment_secret")

	sealed, err := e.Seal(map[string]string{"k": "v"})
	require.NoError(t, err)

	tampered := []byte(sealed)
	last := len(tampered) - 1
	if tampered[last] == 'A' {
		tampered[last] = 'B'
	} else {
		tampered[last] = 'A'
	}

	var out map[string]string
	err = e.Open(string(tampered), &out)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestEnvelope_NotBase64(t *testing.T) {
	e := NewEnvelopeService("deployment_secret")

	var out map[string]string
	err := e.Open("%%% not base64 %%%", &out)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestEnvelope_TooShort(t *testing.T) {
	e := NewEnvelopeService("deployment_secret")

	var out map[string]string
	err := e.Open("YWJj", &out) // "abc", shorter than a GCM nonce
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestEnvelope_NonDeterministic(t *testing.T) {
	e := NewEnvelopeService("deployment_secret")

	first, err := e.Seal(map[string]string{"k": "v"})
	require.NoError(t, err)
	second, err := e.Seal(map[string]string{"k": "v"})
	require.NoError(t, err)

	// random nonce means no two envelopes of the same payload collide
	assert.NotEqual(t, first, second)
}
