// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"

	"github.com/openscilab/lab-auth-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the persistence contract for account records.
type UserRepository interface {
	// CreateUser persists a new account and returns it with
	// server-assigned fields (UserID, CreatedAt) populated.
	// Returns ErrUsernameTaken when the username is already registered.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername retrieves the account registered under the given
	// normalized username. Returns ErrNoUserWasFound when absent.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// UpdateUser applies a partial update to the account registered under
	// username. Returns ErrNoUserWasFound when the account does not exist
	// and ErrNoFieldsToUpdate when the update carries nothing.
	UpdateUser(ctx context.Context, username string, update models.UserUpdate) error

	// DeleteUnauthorizedUser removes an account that has not passed the
	// authorization gate. Returns ErrUserStillAuthorized when the account
	// exists but is authorized, ErrNoUserWasFound when it does not exist.
	DeleteUnauthorizedUser(ctx context.Context, username string) error
}
