package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/openscilab/lab-auth-keeper/models"
)

const (
	createUser = `INSERT INTO users_info (username, password, email, is_authorized, has_2fa, otp_secret, login_email_sent)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING user_id, username, password, email, is_authorized, has_2fa, otp_secret, login_email_sent, created_at;`

	findUserByUsername = `SELECT user_id, username, password, email, is_authorized, has_2fa, otp_secret, login_email_sent, created_at
    FROM users_info
    WHERE username = $1;`

	deleteUnauthorizedUser = `DELETE FROM users_info
		WHERE username = $1 AND is_authorized = FALSE;`

	userExists = `SELECT EXISTS(SELECT 1 FROM users_info WHERE username = $1);`
)

// psql is a squirrel statement builder preconfigured for PostgreSQL
// positional placeholders ($1, $2, ...).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildUpdateUserQuery dynamically builds an UPDATE statement writing only
// the fields present in update. Returns ErrNoFieldsToUpdate when the update
// is empty so no statement touches the database for a no-op.
func buildUpdateUserQuery(username string, update models.UserUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, ErrNoFieldsToUpdate
	}

	builder := psql.Update(models.User{}.TableName())

	if update.PasswordHash != nil {
		builder = builder.Set("password", *update.PasswordHash)
	}
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}
	if update.IsAuthorized != nil {
		builder = builder.Set("is_authorized", *update.IsAuthorized)
	}
	if update.Has2FA != nil {
		builder = builder.Set("has_2fa", *update.Has2FA)
	}
	if update.OTPSecret != nil {
		builder = builder.Set("otp_secret", *update.OTPSecret)
	}
	if update.LoginEmailSent != nil {
		builder = builder.Set("login_email_sent", *update.LoginEmailSent)
	}

	query, args, err := builder.Where(sq.Eq{"username": username}).ToSql()
	if err != nil {
		return "", nil, err
	}

	return query, args, nil
}
