// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"testing"
	"time"

	"github.com/openscilab/lab-auth-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSigner(t *testing.T, secret string) *tokenSigner {
	t.Helper()
	s, ok := NewTokenSigner(secret).(*tokenSigner)
	require.True(t, ok)
	return s
}

func TestTokenSigner_RoundTrip(t *testing.T) {
	s := newTestSigner(t, "signing_secret")

	payload := models.TokenPayload{
		models.TokenFieldUsername: "rincewind",
		models.TokenFieldPurpose:  models.TokenPurposeSelfApproval,
	}

	token, err := s.Sign(payload, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := s.Unsign(token)
	require.NoError(t, err)

	assert.Equal(t, "rincewind", got.Username())
	assert.Equal(t, models.TokenPurposeSelfApproval, got.Purpose())
	assert.NotEmpty(t, got[models.TokenFieldExpire])
}

func TestTokenSigner_DoesNotMutateCallerPayload(t *testing.T) {
	s := newTestSigner(t, "signing_secret")
	payload := models.TokenPayload{models.TokenFieldUsername: "rincewind"}

	_, err := s.Sign(payload, time.Hour)
	require.NoError(t, err)

	assert.NotContains(t, payload, models.TokenFieldExpire)
}

func TestTokenSigner_ValidJustBeforeExpiry(t *testing.T) {
	s := newTestSigner(t, "signing_secret")

	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return issued }

	token, err := s.Sign(models.TokenPayload{models.TokenFieldUsername: "rincewind"}, time.Hour)
	require.NoError(t, err)

	// 59 minutes in: still valid
	s.now = func() time.Time { return issued.Add(59 * time.Minute) }
	_, err = s.Unsign(token)
	assert.NoError(t, err)
}

func TestTokenSigner_ExpiredAfterTTL(t *testing.T) {
	s := newTestSigner(t, "signing_secret")

	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return issued }

	token, err := s.Sign(models.TokenPayload{models.TokenFieldUsername: "rincewind"}, time.Hour)
	require.NoError(t, err)

	// 61 minutes in: expired
	s.now = func() time.Time { return issued.Add(61 * time.Minute) }
	_, err = s.Unsign(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenSigner_TamperedPayload(t *testing.T) {
	s := newTestSigner(t, "signing_secret")

	token, err := s.Sign(models.TokenPayload{models.TokenFieldUsername: "rincewind"}, time.Hour)
	require.NoError(t, err)

	// flip one byte of the encoded payload
	tampered := []byte(token)
	if tampered[0] == 'A' {
		tampered[0] = 'B'
	} else {
		tampered[0] = 'A'
	}

	_, err = s.Unsign(string(tampered))
	assert.ErrorIs(t, err, ErrSignatureInvalid)
}

func TestTokenSigner_WrongKey(t *testing.T) {
	signer := newTestSigner(t, "signing_secret")
	other := newTestSigner(t, "different_secret")

	token, err := signer.Sign(models.TokenPayload{models.TokenFieldUsername: "rincewind"}, time.Hour)
	require.NoError(t, err)

	_, err = other.Unsign(token)
	assert.ErrorIs(t, err, ErrSignatureInvalid)
}

func TestTokenSigner_Malformed(t *testing.T) {
	s := newTestSigner(t, "signing_secret")

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"no separator", "justonepart"},
		{"bad signature encoding", "cGF5bG9hZA.!!!"},
		{"garbage", "%%%.%%%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Unsign(tt.token)
			assert.ErrorIs(t, err, ErrTokenMalformed)
		})
	}
}

func TestTokenSigner_EmptyPayload(t *testing.T) {
	s := newTestSigner(t, "signing_secret")

	token, err := s.Sign(models.TokenPayload{}, time.Hour)
	require.NoError(t, err)

	payload, err := s.Unsign(token)
	require.NoError(t, err)
	assert.Empty(t, payload.Username())
}
