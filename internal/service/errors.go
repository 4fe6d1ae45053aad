// SPDX-License-Identifier: Apache-2.0

package service

import "errors"

// Sentinel errors of the service layer. Handlers map these onto HTTP
// statuses; anything not listed here is treated as an internal error.
var (
	// ErrInvalidDataProvided wraps a validation failure of the request body.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongCredentials is the single rejection for an unknown username
	// or a wrong password, so a caller cannot probe which one it was.
	ErrWrongCredentials = errors.New("username or password is incorrect")

	// ErrUserNotAuthorized rejects a login for an account that exists but
	// has not passed the approval gate yet.
	ErrUserNotAuthorized = errors.New("user is waiting for authorization")

	// ErrUserBlocked rejects a login while the username is throttled.
	ErrUserBlocked = errors.New("too many failed login attempts")

	// ErrWrongMFACode rejects a login with a missing or invalid TOTP code.
	ErrWrongMFACode = errors.New("one-time code is incorrect")

	// ErrMFARequired rejects a login of an account that must enroll a TOTP
	// device before it can authenticate.
	ErrMFARequired = errors.New("two-factor enrollment is required")

	// ErrMFANotEnabled rejects an MFA reset for an account without TOTP.
	ErrMFANotEnabled = errors.New("two-factor authentication is not enabled")

	// ErrSignupDisabled rejects account creation when signup is turned off.
	ErrSignupDisabled = errors.New("signup is disabled")

	// ErrFeatureDisabled rejects a self-service flow that the deployment
	// has not enabled.
	ErrFeatureDisabled = errors.New("feature is disabled")

	// ErrUsernameTaken signals that the requested username already exists.
	ErrUsernameTaken = errors.New("username is already taken")

	// ErrUserNotFound signals that the named account does not exist.
	ErrUserNotFound = errors.New("user was not found")

	// ErrUserStillAuthorized rejects discarding an authorized account.
	ErrUserStillAuthorized = errors.New("user is still authorized")

	// ErrEmailNotSet signals that an email flow was requested for an
	// account without an address on record.
	ErrEmailNotSet = errors.New("no email address on record")

	// ErrInvalidToken covers a malformed, forged, or wrong-purpose
	// self-service token.
	ErrInvalidToken = errors.New("token is invalid")

	// ErrTokenExpired covers a well-formed token past its lifetime.
	ErrTokenExpired = errors.New("token has expired")

	// ErrInternal wraps unexpected failures of downstream dependencies.
	ErrInternal = errors.New("internal error")
)
