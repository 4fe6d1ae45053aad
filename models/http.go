package models

// LoginRequest carries the credentials of a login attempt.
type LoginRequest struct {
	// Username is the account key; it is normalized before lookup.
	Username string `json:"username"`

	// Password is the plaintext candidate password. Only ever compared
	// against the stored bcrypt hash, never persisted.
	Password string `json:"password"`

	// OTP is the one-time code, required when the account has 2FA enabled.
	OTP string `json:"otp,omitempty"`
}

// LoginResponse is returned on a successful authentication.
type LoginResponse struct {
	Username string `json:"username"`
}

// SignupRequest carries the data of an account-creation attempt.
type SignupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`

	// Email is optional unless the deployment uses self-approval,
	// in which case the approval link is mailed to it.
	Email string `json:"email,omitempty"`
}

// SignupResult summarizes the outcome of a signup: whether the fresh
// account may log in already and whether an approval mail went out.
type SignupResult struct {
	Username       string `json:"username"`
	IsAuthorized   bool   `json:"is_authorized"`
	LoginEmailSent bool   `json:"login_email_sent"`
}

// ChangePasswordRequest carries a self-service password change.
// The old password must verify before the new one is stored.
type ChangePasswordRequest struct {
	Username    string `json:"username"`
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// ForgetPasswordRequest starts the emailed password-reset flow.
type ForgetPasswordRequest struct {
	Username string `json:"username"`
}

// ResetPasswordRequest completes the reset flow: the token arrives in the
// URL, the replacement password in the body.
type ResetPasswordRequest struct {
	NewPassword string `json:"new_password"`
}

// ResetMFARequest starts the emailed MFA-device reset flow. The current
// password is required so a bare username cannot trigger reset mails.
type ResetMFARequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// MFASetupRequest commits a confirmed TOTP secret to the account.
type MFASetupRequest struct {
	Username string `json:"username"`
	Update   bool   `json:"update"`
	Secret   string `json:"secret"`
}

// MFASetupResponse reports whether the secret was committed.
type MFASetupResponse struct {
	UpdateSuccessful bool `json:"update_successful"`
}

// MFAValidateRequest carries the two consecutive codes of the enrollment
// confirmation step.
type MFAValidateRequest struct {
	Input1 string `json:"input1"`
	Input2 string `json:"input2"`
	Secret string `json:"secret"`
}

// MFAValidateResponse reports the outcome of the two-code check.
type MFAValidateResponse struct {
	Valid bool `json:"valid"`
}

// MFAEnrollResponse returns a freshly generated secret together with the
// otpauth:// provisioning URI to render as a QR code.
type MFAEnrollResponse struct {
	Secret string `json:"secret"`
	URI    string `json:"uri"`
}

// UserDataResponse is the peer-service handshake envelope: Data holds the
// sealed user context, Message is "OK" or an error summary.
type UserDataResponse struct {
	Data    string `json:"data"`
	Message string `json:"message"`
}

// UserDataRequest asks for the sealed context of one user.
type UserDataRequest struct {
	Username string `json:"username"`
}

// DeauthorizationPayload is the JSON carried inside the signed
// deauthorization webhook body. If both fields are set, Username wins;
// if only ClaimName is set, the username is recovered from it.
type DeauthorizationPayload struct {
	Username  string `json:"username,omitempty"`
	ClaimName string `json:"claimname,omitempty"`
}
