// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/openscilab/lab-auth-keeper/models"
)

const approvalEmailBody = `<p>Hello %s,</p>
<p>Your account has been created. Follow the link below to activate it:</p>
<p><a href="%s">%s</a></p>
<p>The link is valid for a limited time. If it has expired, ask an
administrator to authorize your account.</p>`

const passwordResetEmailBody = `<p>Hello %s,</p>
<p>A password reset was requested for your account. Follow the link below
to choose a new password:</p>
<p><a href="%s">%s</a></p>
<p>If you did not request this, you can ignore this message.</p>`

const mfaResetEmailBody = `<p>Hello %s,</p>
<p>A reset of your two-factor device was requested. Follow the link below
to remove the current enrollment:</p>
<p><a href="%s">%s</a></p>
<p>If you did not request this, change your password immediately.</p>`

// selfServiceLink renders an absolute link embedding a freshly signed
// token for the given purpose.
func (a *authService) selfServiceLink(username, purpose, path string) (string, error) {
	token, err := a.tokens.Sign(models.TokenPayload{
		models.TokenFieldUsername: username,
		models.TokenFieldPurpose:  purpose,
	}, a.policy.TokenTTL)
	if err != nil {
		return "", fmt.Errorf("sign %s token: %w", purpose, err)
	}

	base := strings.TrimRight(a.mail.PublicBaseURL, "/")
	return base + path + "/" + token, nil
}

func (a *authService) sendSelfApprovalEmail(ctx context.Context, user models.User) error {
	link, err := a.selfServiceLink(user.Username, models.TokenPurposeSelfApproval, "/confirm")
	if err != nil {
		return err
	}

	return a.emails.SendEmail(ctx, models.Email{
		To:       models.EmailAddress{Username: user.Username, Email: user.Email},
		From:     models.EmailAddress{Email: a.mail.FromAddress},
		Subject:  "Activate your account",
		HTMLBody: fmt.Sprintf(approvalEmailBody, user.Username, link, link),
	})
}

func (a *authService) sendPasswordResetEmail(ctx context.Context, user models.User) error {
	link, err := a.selfServiceLink(user.Username, models.TokenPurposePasswordReset, "/confirm-password")
	if err != nil {
		return err
	}

	return a.emails.SendEmail(ctx, models.Email{
		To:       models.EmailAddress{Username: user.Username, Email: user.Email},
		From:     models.EmailAddress{Email: a.mail.FromAddress},
		Subject:  "Reset your password",
		HTMLBody: fmt.Sprintf(passwordResetEmailBody, user.Username, link, link),
	})
}

func (a *authService) sendMFAResetEmail(ctx context.Context, user models.User) error {
	link, err := a.selfServiceLink(user.Username, models.TokenPurposeMFAReset, "/confirm-mfa-reset")
	if err != nil {
		return err
	}

	return a.emails.SendEmail(ctx, models.Email{
		To:       models.EmailAddress{Username: user.Username, Email: user.Email},
		From:     models.EmailAddress{Email: a.mail.FromAddress},
		Subject:  "Reset your two-factor device",
		HTMLBody: fmt.Sprintf(mfaResetEmailBody, user.Username, link, link),
	})
}
