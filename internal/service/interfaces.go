// SPDX-License-Identifier: Apache-2.0

// Package service implements the business logic of the authentication
// engine: credential checks with login throttling, account lifecycle
// (signup, approval, discard), the emailed self-service flows, TOTP
// enrollment, and the sealed cross-service user context.
package service

import (
	"context"

	"github.com/openscilab/lab-auth-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService is the account and credential engine.
type AuthService interface {
	// Authenticate verifies a login attempt end to end: throttle state,
	// account existence and authorization, password, and the TOTP code
	// when the account has one enrolled. On success the throttle counter
	// of the username is cleared and the account record is returned.
	Authenticate(ctx context.Context, request models.LoginRequest) (models.User, error)

	// Signup creates a new account. Depending on deployment policy the
	// account comes out pre-authorized, receives a self-approval mail, or
	// waits for an admin.
	Signup(ctx context.Context, request models.SignupRequest) (models.SignupResult, error)

	// ChangePassword replaces the password after verifying the old one.
	ChangePassword(ctx context.Context, request models.ChangePasswordRequest) error

	// ToggleAuthorization flips the authorization flag of an account and
	// returns the updated record.
	ToggleAuthorization(ctx context.Context, username string) (models.User, error)

	// DiscardUser deletes an account, but only while it is unauthorized.
	DiscardUser(ctx context.Context, username string) error

	// RequestPasswordReset mails a signed password-reset link to the
	// address on record. Unknown usernames are swallowed silently so the
	// endpoint cannot be used to probe for accounts.
	RequestPasswordReset(ctx context.Context, request models.ForgetPasswordRequest) error

	// RequestMFAReset mails a signed MFA-reset link after re-verifying
	// the account password.
	RequestMFAReset(ctx context.Context, request models.ResetMFARequest) error

	// RedeemSelfApproval consumes a self-approval token and authorizes
	// the account named inside it. Returns the username.
	RedeemSelfApproval(ctx context.Context, token string) (string, error)

	// RedeemPasswordReset consumes a password-reset token and stores the
	// replacement password. Returns the username.
	RedeemPasswordReset(ctx context.Context, token string, newPassword string) (string, error)

	// RedeemMFAReset consumes an MFA-reset token and clears the TOTP
	// enrollment of the account. Returns the username.
	RedeemMFAReset(ctx context.Context, token string) (string, error)

	// Deauthorize revokes the login permission of the account named in a
	// webhook payload, resolving the username from the claim name when
	// it is not given directly.
	Deauthorize(ctx context.Context, payload models.DeauthorizationPayload) error

	// UserContext assembles the trusted cross-service view of one account.
	UserContext(ctx context.Context, username string) (models.UserContext, error)

	// SealedUserContext returns the user context sealed with the
	// deployment envelope, ready to hand to a peer service.
	SealedUserContext(ctx context.Context, username string) (string, error)
}

// MFAService manages TOTP enrollment of accounts.
type MFAService interface {
	// Enroll generates a fresh secret and provisioning URI for an account.
	// Nothing is persisted until Setup commits the secret.
	Enroll(ctx context.Context, username string) (models.MFAEnrollResponse, error)

	// Setup commits a confirmed secret to the account, or clears the
	// enrollment when the request asks for removal.
	Setup(ctx context.Context, request models.MFASetupRequest) (models.MFASetupResponse, error)

	// Validate checks the two consecutive codes of the enrollment
	// confirmation step against a candidate secret.
	Validate(ctx context.Context, request models.MFAValidateRequest) models.MFAValidateResponse
}

// ThrottleService tracks failed login attempts per username and decides
// when further attempts are blocked. Implementations must be safe for
// concurrent use.
type ThrottleService interface {
	// RecordFailure notes one failed attempt for the username.
	RecordFailure(username string)

	// RecordSuccess clears the failure counter of the username.
	RecordSuccess(username string)

	// IsBlocked reports whether the username has exceeded the allowed
	// number of failures within the cooldown window.
	IsBlocked(username string) bool

	// Sweep drops counters whose cooldown has fully elapsed and returns
	// how many were removed.
	Sweep() int
}

// TOTPService wraps the time-based one-time password scheme.
type TOTPService interface {
	// Enroll generates a secret and otpauth:// URI for the username.
	Enroll(username string) (models.MFAEnrollResponse, error)

	// VerifyEnrollment checks the two consecutive codes a user submits to
	// prove their authenticator is set up. The codes must differ.
	VerifyEnrollment(code1, code2, secret string) bool

	// VerifyLogin checks a single login code against the stored secret.
	VerifyLogin(code, secret string) bool
}
