// SPDX-License-Identifier: Apache-2.0

// Package adapter provides transport-layer abstractions for communicating
// with the other services of the platform deployment.
//
// The primary abstraction is [EmailSender], which decouples the service layer
// from the platform email service's HTTP protocol. Messages are sealed with
// the deployment envelope before leaving the process, so intermediaries never
// see recipient addresses or message bodies.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling.
package adapter

import (
	"context"

	"github.com/openscilab/lab-auth-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// EmailSender delivers notification mail through the platform email service.
// Implementations are responsible for sealing, serialisation, and mapping
// transport-level errors to the sentinel values defined in this package.
type EmailSender interface {
	// SendEmail seals the message and posts it to the email service.
	// The call is bounded by the configured request timeout so a slow
	// peer cannot stall a signup or reset flow.
	SendEmail(ctx context.Context, email models.Email) error
}
