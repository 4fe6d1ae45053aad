// SPDX-License-Identifier: Apache-2.0

package service

import (
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTOTPFixture(t *testing.T) (*totpService, string, time.Time) {
	t.Helper()

	svc := NewTOTPService("OpenResearchLab", "0.0.0.0:8080").(*totpService)
	base := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }

	enrollment, err := svc.Enroll("rincewind")
	require.NoError(t, err)
	require.NotEmpty(t, enrollment.Secret)

	return svc, enrollment.Secret, base
}

func codeAt(t *testing.T, secret string, at time.Time) string {
	t.Helper()
	code, err := totp.GenerateCode(secret, at)
	require.NoError(t, err)
	return code
}

func TestTOTP_Enroll(t *testing.T) {
	svc := NewTOTPService("OpenResearchLab", "0.0.0.0:8080")

	enrollment, err := svc.Enroll("rincewind")
	require.NoError(t, err)

	assert.NotEmpty(t, enrollment.Secret)
	assert.Contains(t, enrollment.URI, "otpauth://totp/")
	assert.Contains(t, enrollment.URI, "OpenResearchLab")
	assert.Contains(t, enrollment.URI, "rincewind")
}

func TestTOTP_EnrollSecretsUnique(t *testing.T) {
	svc := NewTOTPService("OpenResearchLab", "0.0.0.0:8080")

	first, err := svc.Enroll("rincewind")
	require.NoError(t, err)
	second, err := svc.Enroll("rincewind")
	require.NoError(t, err)

	assert.NotEqual(t, first.Secret, second.Secret)
}

func TestTOTP_VerifyLogin(t *testing.T) {
	svc, secret, base := newTOTPFixture(t)

	assert.True(t, svc.VerifyLogin(codeAt(t, secret, base), secret))

	// one period of clock drift is tolerated
	assert.True(t, svc.VerifyLogin(codeAt(t, secret, base.Add(-30*time.Second)), secret))

	// a long-stale code is not
	assert.False(t, svc.VerifyLogin(codeAt(t, secret, base.Add(-5*time.Minute)), secret))

	assert.False(t, svc.VerifyLogin("", secret))
	assert.False(t, svc.VerifyLogin("000000", secret))
}

func TestTOTP_VerifyEnrollment(t *testing.T) {
	svc, secret, base := newTOTPFixture(t)

	code1 := codeAt(t, secret, base.Add(-30*time.Second))
	code2 := codeAt(t, secret, base)

	assert.True(t, svc.VerifyEnrollment(code1, code2, secret))
}

func TestTOTP_VerifyEnrollment_Rejections(t *testing.T) {
	svc, secret, base := newTOTPFixture(t)

	code := codeAt(t, secret, base)

	// the two codes must be consecutive, not repeated
	assert.False(t, svc.VerifyEnrollment(code, code, secret))

	assert.False(t, svc.VerifyEnrollment("", code, secret))
	assert.False(t, svc.VerifyEnrollment(code, "", secret))
	assert.False(t, svc.VerifyEnrollment("123456", "654321", secret))
}

func TestQualifyIssuer(t *testing.T) {
	tests := []struct {
		name     string
		address  string
		expected string
	}{
		{"production host", "auth.lab.example.org:8080", "Lab"},
		{"test host", "auth.test.example.org:8080", "Lab-Test"},
		{"localhost", "localhost:8080", "Lab-Local"},
		{"loopback", "127.0.0.1:9000", "Lab-Local"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, qualifyIssuer("Lab", tt.address))
		})
	}
}
