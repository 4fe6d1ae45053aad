package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "postgres://localhost/testdb"}},
	}
}

func TestValidate_OK(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.validate())
}

func TestValidate_MissingDSN(t *testing.T) {
	cfg := &StructuredConfig{}
	err := cfg.validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoDatabaseDSN)
}

func TestValidate_SelfApprovalRequiresStrongKey(t *testing.T) {
	cfg := validConfig()
	cfg.Auth.SelfApprovalPattern = `.*@research\.example\.org`
	cfg.Auth.SecretKey = "short"

	err := cfg.validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWeakSecretKey)
}

func TestValidate_SelfApprovalWithStrongKey(t *testing.T) {
	cfg := validConfig()
	cfg.Auth.SelfApprovalPattern = `.*@research\.example\.org`
	cfg.Auth.SecretKey = "long-enough-key"

	assert.NoError(t, cfg.validate())
}

func TestValidate_BadSelfApprovalPattern(t *testing.T) {
	cfg := validConfig()
	cfg.Auth.SelfApprovalPattern = `(`
	cfg.Auth.SecretKey = "long-enough-key"

	err := cfg.validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSelfApprovalPattern)
}

func TestValidate_OpenSignupConflictsWithSelfApproval(t *testing.T) {
	cfg := validConfig()
	cfg.Auth.SelfApprovalPattern = `.*@research\.example\.org`
	cfg.Auth.SecretKey = "long-enough-key"
	cfg.Auth.OpenSignup = true

	err := cfg.validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSignupPolicyConflict)
}

func TestValidate_Require2FAImpliesAllow2FA(t *testing.T) {
	cfg := validConfig()
	cfg.Auth.Require2FA = true
	cfg.Auth.Allow2FA = false

	require.NoError(t, cfg.validate())
	assert.True(t, cfg.Auth.Allow2FA)
}

func TestValidate_JoinsMultipleErrors(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.Auth.SelfApprovalPattern = `.*`
	cfg.Auth.OpenSignup = true

	err := cfg.validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoDatabaseDSN)
	assert.ErrorIs(t, err, ErrWeakSecretKey)
	assert.ErrorIs(t, err, ErrSignupPolicyConflict)
}
