package models

import "time"

// User represents one account record of the lab platform.
// It contains identity attributes, the credential hash, and the
// authorization/MFA state toggled by the self-service flows.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the unique, normalized (lower-case, trimmed) account key.
	// It is immutable after creation.
	Username string `json:"username"`

	// PasswordHash stores the salted bcrypt hash of the user's password.
	// Never plaintext, never serialized.
	PasswordHash []byte `json:"-"`

	// Email is the optional address used for self-service links.
	Email string `json:"email,omitempty"`

	// IsAuthorized reports whether the account has passed the admin or
	// self-approval gate and may log in.
	IsAuthorized bool `json:"is_authorized"`

	// Has2FA reports whether TOTP verification is required at login.
	// Invariant: Has2FA is true if and only if OTPSecret is non-empty.
	Has2FA bool `json:"has_2fa"`

	// OTPSecret is the shared TOTP secret committed at enrollment.
	// Present only while Has2FA is true. Never serialized.
	OTPSecret string `json:"-"`

	// LoginEmailSent tracks whether a self-approval email was already
	// dispatched for this account, so signup feedback can say so.
	LoginEmailSent bool `json:"login_email_sent"`

	// CreatedAt is the timestamp when the account was created.
	// Used for auditing and lifecycle management.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users_info"
}

// UserUpdate describes a partial update of a user record. Nil fields are
// left untouched; non-nil fields are written. Username is immutable and
// therefore not part of the update set.
type UserUpdate struct {
	PasswordHash   *[]byte
	Email          *string
	IsAuthorized   *bool
	Has2FA         *bool
	OTPSecret      *string
	LoginEmailSent *bool
}

// IsEmpty reports whether the update carries no fields to write.
func (u UserUpdate) IsEmpty() bool {
	return u.PasswordHash == nil &&
		u.Email == nil &&
		u.IsAuthorized == nil &&
		u.Has2FA == nil &&
		u.OTPSecret == nil &&
		u.LoginEmailSent == nil
}
