package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mzotov/cliptide/internal/logger"
	"github.com/mzotov/cliptide/models"
)

func newTestEmailTokenRepo(t *testing.T) (*emailTokenRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	wrapped, mock, db := newTestDB(t)
	repo := &emailTokenRepository{
		db:     wrapped,
		logger: logger.Nop(),
	}
	return repo, mock, db
}

func TestCreateEmailToken_Success(t *testing.T) {
	repo, mock, db := newTestEmailTokenRepo(t)
	defer db.Close()

	token := models.EmailToken{
		UserID:    1,
		Purpose:   models.PurposeVerifyEmail,
		TokenHash: "digest-a",
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}

	now := time.Now()
	mock.ExpectQuery("INSERT INTO email_tokens").
		WithArgs(token.UserID, token.Purpose, token.TokenHash, token.ExpiresAt).
		WillReturnRows(sqlmock.NewRows([]string{"token_id", "created_at"}).AddRow(int64(9), now))

	created, err := repo.CreateEmailToken(context.Background(), token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.TokenID != 9 {
		t.Errorf("expected token_id=9, got %d", created.TokenID)
	}
}

func TestConsumeEmailToken_Success(t *testing.T) {
	repo, mock, db := newTestEmailTokenRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE email_tokens").
		WithArgs("digest-a", models.PurposeVerifyEmail).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(int64(1)))

	userID, err := repo.ConsumeEmailToken(context.Background(), "digest-a", models.PurposeVerifyEmail)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if userID != 1 {
		t.Errorf("expected user_id=1, got %d", userID)
	}
}

func TestConsumeEmailToken_UsedExpiredAndUnknownAreIndistinguishable(t *testing.T) {
	repo, mock, db := newTestEmailTokenRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE email_tokens").
		WithArgs("digest-spent", models.PurposeResetPassword).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

	_, err := repo.ConsumeEmailToken(context.Background(), "digest-spent", models.PurposeResetPassword)
	if !errors.Is(err, ErrEmailTokenNotFound) {
		t.Fatalf("expected ErrEmailTokenNotFound, got %v", err)
	}
}

func TestConsumeEmailToken_WrongPurposeDoesNotMatch(t *testing.T) {
	repo, mock, db := newTestEmailTokenRepo(t)
	defer db.Close()

	// a verification token presented to the reset flow must not be spent
	mock.ExpectQuery("UPDATE email_tokens").
		WithArgs("digest-a", models.PurposeResetPassword).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

	_, err := repo.ConsumeEmailToken(context.Background(), "digest-a", models.PurposeResetPassword)
	if !errors.Is(err, ErrEmailTokenNotFound) {
		t.Fatalf("expected ErrEmailTokenNotFound, got %v", err)
	}
}

func TestInvalidateUserTokens(t *testing.T) {
	repo, mock, db := newTestEmailTokenRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE email_tokens").
		WithArgs(int64(1), models.PurposeVerifyEmail).
		WillReturnResult(sqlmock.NewResult(0, 2))

	if err := repo.InvalidateUserTokens(context.Background(), 1, models.PurposeVerifyEmail); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteTokensExpiredBefore(t *testing.T) {
	repo, mock, db := newTestEmailTokenRepo(t)
	defer db.Close()

	cutoff := time.Now().Add(-30 * 24 * time.Hour)

	mock.ExpectExec("DELETE FROM email_tokens").
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 5))

	deleted, err := repo.DeleteTokensExpiredBefore(context.Background(), cutoff)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 5 {
		t.Errorf("expected 5 deleted rows, got %d", deleted)
	}
}
