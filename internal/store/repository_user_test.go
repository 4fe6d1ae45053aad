package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/openscilab/lab-auth-keeper/internal/logger"
	"github.com/openscilab/lab-auth-keeper/models"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &userRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func userRows(user models.User, now time.Time) *sqlmock.Rows {
	return sqlmock.
		NewRows([]string{"user_id", "username", "password", "email", "is_authorized", "has_2fa", "otp_secret", "login_email_sent", "created_at"}).
		AddRow(1, user.Username, user.PasswordHash, user.Email, user.IsAuthorized, user.Has2FA, user.OTPSecret, user.LoginEmailSent, now)
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{
		Username:     "rincewind",
		PasswordHash: []byte("$2a$10$hash"),
		Email:        "r@uu.example.org",
	}

	mock.ExpectQuery("INSERT INTO users_info").
		WithArgs(user.Username, user.PasswordHash, user.Email, false, false, "", false).
		WillReturnRows(userRows(user, time.Now()))

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != 1 {
		t.Errorf("expected UserID=1, got %d", created.UserID)
	}
	if created.Username != user.Username {
		t.Errorf("expected username %s, got %s", user.Username, created.Username)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Username: "rincewind"}

	mock.ExpectQuery("INSERT INTO users_info").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(ctx, user)
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Username: "rincewind"}

	mock.ExpectQuery("INSERT INTO users_info").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(ctx, user)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestCreateUser_ScanError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Username: "rincewind"}

	rows := sqlmock.
		NewRows([]string{"user_id"}). // intentionally wrong shape → scan error
		AddRow(1)

	mock.ExpectQuery("INSERT INTO users_info").
		WillReturnRows(rows)

	_, err := repo.CreateUser(ctx, user)
	if err == nil {
		t.Fatal("expected scan error, got nil")
	}
}

func TestFindUserByUsername_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{
		Username:     "rincewind",
		PasswordHash: []byte("$2a$10$hash"),
		IsAuthorized: true,
		Has2FA:       true,
		OTPSecret:    "JBSWY3DPEHPK3PXP",
	}

	mock.ExpectQuery("SELECT user_id").
		WithArgs("rincewind").
		WillReturnRows(userRows(user, time.Now()))

	found, err := repo.FindUserByUsername(ctx, "rincewind")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Username != "rincewind" {
		t.Errorf("expected username rincewind, got %s", found.Username)
	}
	if !found.IsAuthorized {
		t.Error("expected authorized user")
	}
	if found.OTPSecret != "JBSWY3DPEHPK3PXP" {
		t.Errorf("unexpected otp secret %q", found.OTPSecret)
	}
}

func TestFindUserByUsername_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT user_id").
		WithArgs("rincewind").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByUsername(ctx, "rincewind")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestFindUserByUsername_ScanError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"user_id"}).AddRow(1)

	mock.ExpectQuery("SELECT user_id").
		WithArgs("rincewind").
		WillReturnRows(rows)

	_, err := repo.FindUserByUsername(ctx, "rincewind")
	if err == nil {
		t.Fatal("expected scan error, got nil")
	}
}

func TestUpdateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	authorized := true

	mock.ExpectExec("UPDATE users_info").
		WithArgs(true, "rincewind").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateUser(ctx, "rincewind", models.UserUpdate{IsAuthorized: &authorized})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdateUser_NoFields(t *testing.T) {
	repo, _, db := newTestUserRepo(t)
	defer db.Close()

	err := repo.UpdateUser(context.Background(), "rincewind", models.UserUpdate{})
	if !errors.Is(err, ErrNoFieldsToUpdate) {
		t.Fatalf("expected ErrNoFieldsToUpdate, got %v", err)
	}
}

func TestUpdateUser_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	authorized := true

	mock.ExpectExec("UPDATE users_info").
		WithArgs(true, "rincewind").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateUser(ctx, "rincewind", models.UserUpdate{IsAuthorized: &authorized})
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestUpdateUser_RetriesTransientError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	authorized := true

	mock.ExpectExec("UPDATE users_info").
		WithArgs(true, "rincewind").
		WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectExec("UPDATE users_info").
		WithArgs(true, "rincewind").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateUser(ctx, "rincewind", models.UserUpdate{IsAuthorized: &authorized})
	if err != nil {
		t.Fatalf("unexpected error after retry: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateUser_NonRetryableErrorNotRetried(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	authorized := true

	mock.ExpectExec("UPDATE users_info").
		WithArgs(true, "rincewind").
		WillReturnError(pgError(pgerrcode.CheckViolation))

	err := repo.UpdateUser(ctx, "rincewind", models.UserUpdate{IsAuthorized: &authorized})
	if err == nil || !strings.Contains(err.Error(), ErrExecutingStatement.Error()) {
		t.Fatalf("expected wrapped statement error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteUnauthorizedUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM users_info").
		WithArgs("rincewind").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteUnauthorizedUser(context.Background(), "rincewind"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteUnauthorizedUser_StillAuthorized(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM users_info").
		WithArgs("rincewind").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("rincewind").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	err := repo.DeleteUnauthorizedUser(context.Background(), "rincewind")
	if !errors.Is(err, ErrUserStillAuthorized) {
		t.Fatalf("expected ErrUserStillAuthorized, got %v", err)
	}
}

func TestDeleteUnauthorizedUser_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM users_info").
		WithArgs("rincewind").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("rincewind").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	err := repo.DeleteUnauthorizedUser(context.Background(), "rincewind")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}
