package models

// UserContext is the authenticated user state exchanged between services
// through the encrypted envelope. Peer services trust its content because
// only holders of the deployment secret can produce a valid envelope.
type UserContext struct {
	// Name is the normalized username.
	Name string `json:"name"`

	// Email is the address on record, if any.
	Email string `json:"email,omitempty"`

	// Roles lists the coarse roles of the user ("user", "admin").
	Roles []string `json:"roles"`

	// Admin reports whether the user is a configured administrator.
	Admin bool `json:"admin"`

	// Has2FA reports whether the account has TOTP enabled.
	Has2FA bool `json:"has_2fa"`

	// IsAuthorized reports whether the account may log in at all.
	IsAuthorized bool `json:"is_authorized"`
}

// DeleteUserRequest names the account to discard. Deletion is only
// permitted while the account is unauthorized.
type DeleteUserRequest struct {
	Username string `json:"username"`
}
