// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/openscilab/lab-auth-keeper/internal/adapter"
	"github.com/openscilab/lab-auth-keeper/internal/config"
	"github.com/openscilab/lab-auth-keeper/internal/crypto"
	"github.com/openscilab/lab-auth-keeper/internal/logger"
	"github.com/openscilab/lab-auth-keeper/internal/store"
	"github.com/openscilab/lab-auth-keeper/internal/validators"
	"github.com/openscilab/lab-auth-keeper/models"
)

type authService struct {
	users     store.UserRepository
	emails    adapter.EmailSender
	validator validators.Validator
	tokens    crypto.TokenService
	envelope  crypto.EnvelopeService
	throttle  ThrottleService
	totp      TOTPService

	policy       config.Auth
	mail         config.Email
	selfApproval *regexp.Regexp

	logger *logger.Logger
}

// NewAuthService wires the account engine. The self-approval pattern in
// policy must already be validated; an uncompilable pattern is treated
// as absent.
func NewAuthService(
	users store.UserRepository,
	emails adapter.EmailSender,
	validator validators.Validator,
	tokens crypto.TokenService,
	envelope crypto.EnvelopeService,
	throttle ThrottleService,
	totp TOTPService,
	policy config.Auth,
	mail config.Email,
	logger *logger.Logger,
) AuthService {
	var selfApproval *regexp.Regexp
	if policy.SelfApprovalPattern != "" {
		selfApproval, _ = regexp.Compile(policy.SelfApprovalPattern)
	}

	return &authService{
		users:        users,
		emails:       emails,
		validator:    validator,
		tokens:       tokens,
		envelope:     envelope,
		throttle:     throttle,
		totp:         totp,
		policy:       policy,
		mail:         mail,
		selfApproval: selfApproval,
		logger:       logger,
	}
}

// normalizeUsername folds a username to its canonical form. All lookups
// and writes go through this, so "Alice " and "alice" are one account.
func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

func (a *authService) isAdmin(username string) bool {
	for _, admin := range a.policy.AdminUsers {
		if normalizeUsername(admin) == username {
			return true
		}
	}
	return false
}

func (a *authService) Authenticate(ctx context.Context, request models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrWrongCredentials, err)
	}
	username := normalizeUsername(request.Username)

	if a.throttle.IsBlocked(username) {
		log.Warn().Str("func", "*authService.Authenticate").Str("username", username).Msg("login blocked by throttle")
		return models.User{}, ErrUserBlocked
	}

	user, err := a.users.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrWrongCredentials
		}
		log.Err(err).Str("func", "*authService.Authenticate").Msg("user lookup failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	// Password first. The pending-authorization state is only disclosed
	// to callers who hold the correct password, and a wrong guess burns
	// throttle budget even against a pending account.
	if !crypto.VerifyPassword(user.PasswordHash, request.Password) {
		a.throttle.RecordFailure(username)
		return models.User{}, ErrWrongCredentials
	}

	if !user.IsAuthorized {
		return models.User{}, ErrUserNotAuthorized
	}

	if user.Has2FA {
		if !a.totp.VerifyLogin(request.OTP, user.OTPSecret) {
			a.throttle.RecordFailure(username)
			return models.User{}, ErrWrongMFACode
		}
	} else if a.policy.Require2FA {
		return models.User{}, ErrMFARequired
	}

	a.throttle.RecordSuccess(username)
	log.Info().Str("func", "*authService.Authenticate").Str("username", username).Msg("user authenticated")
	return user, nil
}

func (a *authService) Signup(ctx context.Context, request models.SignupRequest) (models.SignupResult, error) {
	log := logger.FromContext(ctx)

	if !a.policy.EnableSignup {
		return models.SignupResult{}, ErrSignupDisabled
	}

	request.Username = normalizeUsername(request.Username)
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	if err := a.validator.Validate(ctx, request); err != nil {
		return models.SignupResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := crypto.HashPassword(request.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.Signup").Msg("password hashing failed")
		return models.SignupResult{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	user, err := a.users.CreateUser(ctx, models.User{
		Username:     request.Username,
		PasswordHash: hash,
		Email:        request.Email,
		IsAuthorized: a.policy.OpenSignup || a.isAdmin(request.Username),
	})
	if err != nil {
		if errors.Is(err, store.ErrUsernameTaken) {
			return models.SignupResult{}, ErrUsernameTaken
		}
		log.Err(err).Str("func", "*authService.Signup").Msg("user creation failed")
		return models.SignupResult{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	result := models.SignupResult{
		Username:     user.Username,
		IsAuthorized: user.IsAuthorized,
	}

	if a.qualifiesForSelfApproval(user) {
		// An undeliverable mail must not lose the fresh account, so the
		// signup still succeeds and the user can retry via an admin.
		if err := a.sendSelfApprovalEmail(ctx, user); err != nil {
			log.Err(err).Str("func", "*authService.Signup").Str("username", user.Username).Msg("self-approval email failed")
			return result, nil
		}

		sent := true
		if err := a.users.UpdateUser(ctx, user.Username, models.UserUpdate{LoginEmailSent: &sent}); err != nil {
			log.Err(err).Str("func", "*authService.Signup").Msg("failed to record sent email")
		}
		result.LoginEmailSent = true
	}

	log.Info().
		Str("func", "*authService.Signup").
		Str("username", user.Username).
		Bool("authorized", result.IsAuthorized).
		Bool("email_sent", result.LoginEmailSent).
		Msg("user signed up")
	return result, nil
}

func (a *authService) qualifiesForSelfApproval(user models.User) bool {
	return !user.IsAuthorized &&
		a.selfApproval != nil &&
		user.Email != "" &&
		a.selfApproval.MatchString(user.Email)
}

func (a *authService) ChangePassword(ctx context.Context, request models.ChangePasswordRequest) error {
	log := logger.FromContext(ctx)

	request.Username = normalizeUsername(request.Username)
	if err := a.validator.Validate(ctx, request); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := a.users.FindUserByUsername(ctx, request.Username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return ErrWrongCredentials
		}
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}

	if !crypto.VerifyPassword(user.PasswordHash, request.OldPassword) {
		return ErrWrongCredentials
	}

	hash, err := crypto.HashPassword(request.NewPassword)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}

	if err := a.users.UpdateUser(ctx, request.Username, models.UserUpdate{PasswordHash: &hash}); err != nil {
		log.Err(err).Str("func", "*authService.ChangePassword").Msg("password update failed")
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}

	log.Info().Str("func", "*authService.ChangePassword").Str("username", request.Username).Msg("password changed")
	return nil
}

func (a *authService) ToggleAuthorization(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	username = normalizeUsername(username)
	user, err := a.users.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	authorized := !user.IsAuthorized
	if err := a.users.UpdateUser(ctx, username, models.UserUpdate{IsAuthorized: &authorized}); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	user.IsAuthorized = authorized

	log.Info().
		Str("func", "*authService.ToggleAuthorization").
		Str("username", username).
		Bool("authorized", authorized).
		Msg("authorization toggled")
	return user, nil
}

func (a *authService) DiscardUser(ctx context.Context, username string) error {
	log := logger.FromContext(ctx)

	username = normalizeUsername(username)
	if err := a.users.DeleteUnauthorizedUser(ctx, username); err != nil {
		switch {
		case errors.Is(err, store.ErrUserStillAuthorized):
			return ErrUserStillAuthorized
		case errors.Is(err, store.ErrNoUserWasFound):
			return ErrUserNotFound
		default:
			return fmt.Errorf("%w: %w", ErrInternal, err)
		}
	}

	log.Info().Str("func", "*authService.DiscardUser").Str("username", username).Msg("unauthorized user discarded")
	return nil
}

func (a *authService) RequestPasswordReset(ctx context.Context, request models.ForgetPasswordRequest) error {
	log := logger.FromContext(ctx)

	if !a.policy.EnableForgetPassword {
		return ErrFeatureDisabled
	}

	username := normalizeUsername(request.Username)
	user, err := a.users.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			// Respond as if the mail went out so the endpoint cannot be
			// used to enumerate accounts.
			log.Info().Str("func", "*authService.RequestPasswordReset").Str("username", username).Msg("reset requested for unknown user")
			return nil
		}
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}

	if user.Email == "" {
		return ErrEmailNotSet
	}

	if err := a.sendPasswordResetEmail(ctx, user); err != nil {
		log.Err(err).Str("func", "*authService.RequestPasswordReset").Msg("reset email failed")
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}

	log.Info().Str("func", "*authService.RequestPasswordReset").Str("username", username).Msg("password reset email sent")
	return nil
}

func (a *authService) RequestMFAReset(ctx context.Context, request models.ResetMFARequest) error {
	log := logger.FromContext(ctx)

	if !a.policy.EnableResetMFA {
		return ErrFeatureDisabled
	}

	request.Username = normalizeUsername(request.Username)
	if err := a.validator.Validate(ctx, request); err != nil {
		return fmt.Errorf("%w: %w", ErrWrongCredentials, err)
	}

	user, err := a.users.FindUserByUsername(ctx, request.Username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return ErrWrongCredentials
		}
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}

	if !crypto.VerifyPassword(user.PasswordHash, request.Password) {
		return ErrWrongCredentials
	}
	if !user.Has2FA {
		return ErrMFANotEnabled
	}
	if user.Email == "" {
		return ErrEmailNotSet
	}

	if err := a.sendMFAResetEmail(ctx, user); err != nil {
		log.Err(err).Str("func", "*authService.RequestMFAReset").Msg("mfa reset email failed")
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}

	log.Info().Str("func", "*authService.RequestMFAReset").Str("username", user.Username).Msg("mfa reset email sent")
	return nil
}

// redeem verifies a self-service token and checks it was minted for the
// given purpose. All verification failures except expiry collapse into
// ErrInvalidToken.
func (a *authService) redeem(token, purpose string) (string, error) {
	payload, err := a.tokens.Unsign(token)
	if err != nil {
		if errors.Is(err, crypto.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrInvalidToken
	}

	if payload.Purpose() != purpose {
		return "", ErrInvalidToken
	}
	username := normalizeUsername(payload.Username())
	if username == "" {
		return "", ErrInvalidToken
	}
	return username, nil
}

func (a *authService) RedeemSelfApproval(ctx context.Context, token string) (string, error) {
	log := logger.FromContext(ctx)

	username, err := a.redeem(token, models.TokenPurposeSelfApproval)
	if err != nil {
		return "", err
	}

	authorized := true
	if err := a.users.UpdateUser(ctx, username, models.UserUpdate{IsAuthorized: &authorized}); err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("%w: %w", ErrInternal, err)
	}

	log.Info().Str("func", "*authService.RedeemSelfApproval").Str("username", username).Msg("user self-approved")
	return username, nil
}

func (a *authService) RedeemPasswordReset(ctx context.Context, token string, newPassword string) (string, error) {
	log := logger.FromContext(ctx)

	username, err := a.redeem(token, models.TokenPurposePasswordReset)
	if err != nil {
		return "", err
	}

	if err := a.validator.Validate(ctx, models.ResetPasswordRequest{NewPassword: newPassword}); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := crypto.HashPassword(newPassword)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInternal, err)
	}

	if err := a.users.UpdateUser(ctx, username, models.UserUpdate{PasswordHash: &hash}); err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("%w: %w", ErrInternal, err)
	}

	log.Info().Str("func", "*authService.RedeemPasswordReset").Str("username", username).Msg("password reset via emailed link")
	return username, nil
}

func (a *authService) RedeemMFAReset(ctx context.Context, token string) (string, error) {
	log := logger.FromContext(ctx)

	username, err := a.redeem(token, models.TokenPurposeMFAReset)
	if err != nil {
		return "", err
	}

	has2FA := false
	secret := ""
	if err := a.users.UpdateUser(ctx, username, models.UserUpdate{Has2FA: &has2FA, OTPSecret: &secret}); err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("%w: %w", ErrInternal, err)
	}

	log.Info().Str("func", "*authService.RedeemMFAReset").Str("username", username).Msg("mfa enrollment cleared via emailed link")
	return username, nil
}

func (a *authService) Deauthorize(ctx context.Context, payload models.DeauthorizationPayload) error {
	log := logger.FromContext(ctx)

	username := normalizeUsername(payload.Username)
	if username == "" {
		username = usernameFromClaim(payload.ClaimName)
	}
	if username == "" {
		return ErrInvalidDataProvided
	}

	authorized := false
	if err := a.users.UpdateUser(ctx, username, models.UserUpdate{IsAuthorized: &authorized}); err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}

	log.Info().Str("func", "*authService.Deauthorize").Str("username", username).Msg("user deauthorized via webhook")
	return nil
}

// usernameFromClaim recovers the account name from a platform claim name
// of the form "claim-<escaped-username>". Claim names escape every byte
// outside [a-z0-9] as "-xx" (two hex digits), including the dash itself,
// so "claim-jane-2ddoe" resolves to "jane-doe".
func usernameFromClaim(claim string) string {
	claim = normalizeUsername(claim)
	escaped, found := strings.CutPrefix(claim, "claim-")
	if !found {
		return escaped
	}

	var b strings.Builder
	for i := 0; i < len(escaped); i++ {
		if escaped[i] == '-' && i+2 < len(escaped) {
			if decoded, err := hex.DecodeString(escaped[i+1 : i+3]); err == nil {
				b.Write(decoded)
				i += 2
				continue
			}
		}
		b.WriteByte(escaped[i])
	}

	return b.String()
}

func (a *authService) UserContext(ctx context.Context, username string) (models.UserContext, error) {
	username = normalizeUsername(username)
	user, err := a.users.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.UserContext{}, ErrUserNotFound
		}
		return models.UserContext{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	admin := a.isAdmin(username)
	roles := []string{"user"}
	if admin {
		roles = append(roles, "admin")
	}

	return models.UserContext{
		Name:         user.Username,
		Email:        user.Email,
		Roles:        roles,
		Admin:        admin,
		Has2FA:       user.Has2FA,
		IsAuthorized: user.IsAuthorized,
	}, nil
}

func (a *authService) SealedUserContext(ctx context.Context, username string) (string, error) {
	userCtx, err := a.UserContext(ctx, username)
	if err != nil {
		return "", err
	}

	sealed, err := a.envelope.Seal(userCtx)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInternal, err)
	}
	return sealed, nil
}
