package models

// Token purposes embedded in every signed self-service token.
// A redeeming endpoint must reject a token whose purpose does not match
// its own, so a password-reset link can never authorize a signup and
// vice versa.
const (
	TokenPurposeSelfApproval  = "self-approval"
	TokenPurposePasswordReset = "password-reset"
	TokenPurposeMFAReset      = "mfa-reset"
)

// Reserved payload keys managed by the signer and its consumers.
const (
	TokenFieldUsername = "username"
	TokenFieldPurpose  = "purpose"
	TokenFieldExpire   = "expire"
)

// TokenPayload is the claim set carried inside a signed self-service token.
// Keys and values are plain strings; the signer injects the "expire" field
// on signing and validates it on unsigning.
type TokenPayload map[string]string

// Username returns the "username" field, or "" if absent.
func (p TokenPayload) Username() string {
	return p[TokenFieldUsername]
}

// Purpose returns the "purpose" field, or "" if absent.
func (p TokenPayload) Purpose() string {
	return p[TokenFieldPurpose]
}
