package config

import "errors"

var (
	// ErrNoDatabaseDSN is returned when no database connection string was
	// provided by any configuration source.
	ErrNoDatabaseDSN = errors.New("database DSN is required: set STORAGE_DB_DATABASE_URI or the -d flag")

	// ErrWeakSecretKey is returned when self-approval links are enabled but
	// the signing key is shorter than eight characters.
	ErrWeakSecretKey = errors.New("secret key must be at least 8 characters when self-approval is enabled")

	// ErrSignupPolicyConflict is returned when open signup and the
	// self-approval pattern are configured together.
	ErrSignupPolicyConflict = errors.New("open signup and a self-approval pattern are mutually exclusive")

	// ErrInvalidSelfApprovalPattern is returned when the self-approval
	// pattern does not compile as a regular expression.
	ErrInvalidSelfApprovalPattern = errors.New("self-approval pattern is not a valid regular expression")
)
