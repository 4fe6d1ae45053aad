package models

// EmailAddress identifies one side of a notification email. The platform
// email service accepts either a username (resolved to an address there)
// or a literal email address.
type EmailAddress struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
}

// Email is the notification payload posted (sealed) to the platform email
// service. The shape matches what the service expects on /user/email/send.
type Email struct {
	To       EmailAddress `json:"to"`
	From     EmailAddress `json:"from"`
	Subject  string       `json:"subject"`
	HTMLBody string       `json:"html_body"`
}
