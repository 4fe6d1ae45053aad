// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/openscilab/lab-auth-keeper/internal/config"
	"github.com/openscilab/lab-auth-keeper/internal/logger"
	"github.com/openscilab/lab-auth-keeper/internal/store"
	"github.com/openscilab/lab-auth-keeper/models"
)

type mfaService struct {
	users  store.UserRepository
	totp   TOTPService
	policy config.Auth

	logger *logger.Logger
}

// NewMFAService wires the TOTP enrollment flows.
func NewMFAService(users store.UserRepository, totp TOTPService, policy config.Auth, logger *logger.Logger) MFAService {
	return &mfaService{users: users, totp: totp, policy: policy, logger: logger}
}

func (m *mfaService) Enroll(ctx context.Context, username string) (models.MFAEnrollResponse, error) {
	log := logger.FromContext(ctx)

	if !m.policy.Allow2FA {
		return models.MFAEnrollResponse{}, ErrFeatureDisabled
	}

	username = normalizeUsername(username)
	if _, err := m.users.FindUserByUsername(ctx, username); err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.MFAEnrollResponse{}, ErrUserNotFound
		}
		return models.MFAEnrollResponse{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	resp, err := m.totp.Enroll(username)
	if err != nil {
		log.Err(err).Str("func", "*mfaService.Enroll").Msg("secret generation failed")
		return models.MFAEnrollResponse{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	log.Info().Str("func", "*mfaService.Enroll").Str("username", username).Msg("enrollment secret issued")
	return resp, nil
}

// Setup commits the enrollment. The secret arrives back from the client
// only after Validate confirmed two consecutive codes, so no code check
// happens here. Setup never removes an enrollment; the only path that
// clears a device is the signed MFA-reset link.
func (m *mfaService) Setup(ctx context.Context, request models.MFASetupRequest) (models.MFASetupResponse, error) {
	log := logger.FromContext(ctx)

	if !m.policy.Allow2FA {
		return models.MFASetupResponse{}, ErrFeatureDisabled
	}

	if !request.Update || request.Secret == "" {
		return models.MFASetupResponse{}, fmt.Errorf("%w: setup requires update=true and a secret", ErrInvalidDataProvided)
	}

	username := normalizeUsername(request.Username)

	has2FA := true
	update := models.UserUpdate{
		Has2FA:    &has2FA,
		OTPSecret: &request.Secret,
	}

	if err := m.users.UpdateUser(ctx, username, update); err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.MFASetupResponse{}, ErrUserNotFound
		}
		return models.MFASetupResponse{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	log.Info().
		Str("func", "*mfaService.Setup").
		Str("username", username).
		Msg("mfa enrollment committed")
	return models.MFASetupResponse{UpdateSuccessful: true}, nil
}

func (m *mfaService) Validate(_ context.Context, request models.MFAValidateRequest) models.MFAValidateResponse {
	return models.MFAValidateResponse{
		Valid: m.totp.VerifyEnrollment(request.Input1, request.Input2, request.Secret),
	}
}
