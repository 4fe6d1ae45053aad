package validators

import (
	"bufio"
	"bytes"
	"context"
	_ "embed"
	"net/mail"
	"regexp"
	"strings"

	"github.com/openscilab/lab-auth-keeper/models"
)

const (
	// FieldUsername targets the account name of a request.
	FieldUsername = "username"

	// FieldPassword targets the current password of a request.
	FieldPassword = "password"

	// FieldNewPassword targets the replacement password of a change or
	// reset request. It is held to the strength policy; the current
	// password is not.
	FieldNewPassword = "new_password"

	// FieldEmail targets the contact email of a signup request.
	FieldEmail = "email"
)

// usernameRule accepts names that start and end with an alphanumeric rune and
// contain only alphanumerics, underscores, dots, and hyphens in between.
// The shortest accepted name is two runes.
var usernameRule = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_.\-]*[a-zA-Z0-9]$`)

// commonPasswordsRaw is a newline-separated list of frequently leaked
// passwords. Candidates found here are rejected when the common-password
// check is enabled.
//
//go:embed common_passwords.txt
var commonPasswordsRaw []byte

// CredentialsValidator implements the Validator interface for all
// credential-bearing request models: SignupRequest, LoginRequest,
// ChangePasswordRequest, ResetPasswordRequest, and ResetMFARequest.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
type CredentialsValidator struct {
	minPasswordLength    int
	checkCommonPasswords bool
	commonPasswords      map[string]struct{}
}

// NewCredentialsValidator constructs a CredentialsValidator enforcing the
// given minimum password length. When checkCommonPasswords is true, new
// passwords are additionally matched against the embedded leaked-password
// list.
func NewCredentialsValidator(minPasswordLength int, checkCommonPasswords bool) Validator {
	v := &CredentialsValidator{
		minPasswordLength:    minPasswordLength,
		checkCommonPasswords: checkCommonPasswords,
	}

	if checkCommonPasswords {
		v.commonPasswords = loadCommonPasswords()
	}

	return v
}

func loadCommonPasswords() map[string]struct{} {
	set := make(map[string]struct{})
	scanner := bufio.NewScanner(bytes.NewReader(commonPasswordsRaw))
	for scanner.Scan() {
		p := strings.TrimSpace(scanner.Text())
		if p != "" {
			set[p] = struct{}{}
		}
	}
	return set
}

// Validate dispatches validation to the appropriate type-specific method.
func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignupRequest:
		return v.validateSignupRequest(ctx, value, fields...)
	case *models.SignupRequest:
		return v.validateSignupRequest(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)

	case models.ChangePasswordRequest:
		return v.validateChangePasswordRequest(ctx, value, fields...)
	case *models.ChangePasswordRequest:
		return v.validateChangePasswordRequest(ctx, *value, fields...)

	case models.ResetPasswordRequest:
		return v.validateResetPasswordRequest(ctx, value, fields...)
	case *models.ResetPasswordRequest:
		return v.validateResetPasswordRequest(ctx, *value, fields...)

	case models.ResetMFARequest:
		return v.validateResetMFARequest(ctx, value, fields...)
	case *models.ResetMFARequest:
		return v.validateResetMFARequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateUsername enforces the account naming rule on an already
// normalized (lowercased, trimmed) name. Names containing the reserved
// word "admin" are rejected so a user cannot impersonate operators.
func (v *CredentialsValidator) validateUsername(username string) error {
	if !usernameRule.MatchString(username) {
		return ErrInvalidUsername
	}
	if strings.Contains(strings.ToLower(username), "admin") {
		return ErrReservedUsername
	}
	return nil
}

// validateNewPassword enforces the strength policy on a candidate password.
func (v *CredentialsValidator) validateNewPassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if len(password) < v.minPasswordLength {
		return ErrPasswordTooShort
	}
	if v.checkCommonPasswords {
		if _, found := v.commonPasswords[password]; found {
			return ErrCommonPassword
		}
	}
	return nil
}

func (v *CredentialsValidator) validateSignupRequest(_ context.Context, request models.SignupRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldNewPassword, FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if err := v.validateUsername(request.Username); err != nil {
				return err
			}
		case FieldNewPassword:
			if err := v.validateNewPassword(request.Password); err != nil {
				return err
			}
		case FieldEmail:
			// Email is optional at signup; when present it must parse.
			if request.Email != "" {
				if _, err := mail.ParseAddress(request.Email); err != nil {
					return ErrInvalidEmail
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CredentialsValidator) validateLoginRequest(_ context.Context, request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if request.Username == "" {
				return ErrInvalidUsername
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CredentialsValidator) validateChangePasswordRequest(_ context.Context, request models.ChangePasswordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword, FieldNewPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if request.Username == "" {
				return ErrInvalidUsername
			}
		case FieldPassword:
			if request.OldPassword == "" {
				return ErrEmptyPassword
			}
		case FieldNewPassword:
			if err := v.validateNewPassword(request.NewPassword); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CredentialsValidator) validateResetPasswordRequest(_ context.Context, request models.ResetPasswordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNewPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldNewPassword:
			if err := v.validateNewPassword(request.NewPassword); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CredentialsValidator) validateResetMFARequest(_ context.Context, request models.ResetMFARequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if request.Username == "" {
				return ErrInvalidUsername
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
