// SPDX-License-Identifier: Apache-2.0

package service

import (
	"github.com/openscilab/lab-auth-keeper/internal/adapter"
	"github.com/openscilab/lab-auth-keeper/internal/config"
	"github.com/openscilab/lab-auth-keeper/internal/crypto"
	"github.com/openscilab/lab-auth-keeper/internal/logger"
	"github.com/openscilab/lab-auth-keeper/internal/store"
	"github.com/openscilab/lab-auth-keeper/internal/validators"
)

// Services bundles every business-logic service behind one handle for
// dependency wiring. Webhook is exposed so the transport layer can
// verify inbound deauthorization digests with the same deployment key.
type Services struct {
	Auth     AuthService
	MFA      MFAService
	Throttle ThrottleService
	Webhook  crypto.WebhookCodec
}

// NewServices wires the full service graph from its leaf dependencies.
func NewServices(repos *store.Repositories, emails adapter.EmailSender, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	tokens := crypto.NewTokenSigner(cfg.Auth.SecretKey)
	envelope := crypto.NewEnvelopeService(cfg.Auth.DeploymentKey)
	webhook := crypto.NewWebhookCodec(cfg.Auth.DeploymentKey)
	validator := validators.NewCredentialsValidator(cfg.Auth.MinimumPasswordLength, cfg.Auth.CheckCommonPasswords)
	throttle := NewLoginThrottle(cfg.Auth.AllowedFailedLogins, cfg.Auth.LockoutCooldown)
	totp := NewTOTPService(cfg.Auth.TOTPIssuer, cfg.Server.HTTPAddress)

	return &Services{
		Auth: NewAuthService(
			repos.UserRepository,
			emails,
			validator,
			tokens,
			envelope,
			throttle,
			totp,
			cfg.Auth,
			cfg.Email,
			logger,
		),
		MFA:      NewMFAService(repos.UserRepository, totp, cfg.Auth, logger),
		Throttle: throttle,
		Webhook:  webhook,
	}
}
