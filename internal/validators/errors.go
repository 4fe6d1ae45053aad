package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUsername  = errors.New("invalid username")
	ErrReservedUsername = errors.New("username contains a reserved word")
	ErrEmptyPassword    = errors.New("password is required")
	ErrPasswordTooShort = errors.New("password is shorter than the minimum length")
	ErrCommonPassword   = errors.New("password is too common")
	ErrInvalidEmail     = errors.New("invalid email address")
)
