package config

import (
	"errors"
	"fmt"
	"regexp"
)

// validate checks cross-field constraints after all sources were merged.
// It normalizes derived settings (Require2FA implies Allow2FA) and rejects
// configurations that cannot run safely.
func (c *StructuredConfig) validate() error {
	var errs error

	if c.Storage.DB.DSN == "" {
		errs = errors.Join(errs, ErrNoDatabaseDSN)
	}

	if c.Auth.SelfApprovalPattern != "" {
		if len(c.Auth.SecretKey) < 8 {
			errs = errors.Join(errs, ErrWeakSecretKey)
		}
		if _, err := regexp.Compile(c.Auth.SelfApprovalPattern); err != nil {
			errs = errors.Join(errs, fmt.Errorf("%w: %w", ErrInvalidSelfApprovalPattern, err))
		}
		if c.Auth.OpenSignup {
			errs = errors.Join(errs, ErrSignupPolicyConflict)
		}
	}

	if c.Auth.Require2FA {
		c.Auth.Allow2FA = true
	}

	return errs
}
