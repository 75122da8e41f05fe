package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/mzotov/cliptide/internal/logger"
)

func newTestLoginAttemptRepo(t *testing.T) (*loginAttemptRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	wrapped, mock, db := newTestDB(t)
	repo := &loginAttemptRepository{
		db:     wrapped,
		logger: logger.Nop(),
	}
	return repo, mock, db
}

var attemptTestColumns = []string{"identifier", "failed_count", "window_started_at"}

func TestRecordFailure_Success(t *testing.T) {
	repo, mock, db := newTestLoginAttemptRepo(t)
	defer db.Close()

	cutoff := time.Now().Add(-15 * time.Minute)
	windowStart := time.Now()

	mock.ExpectQuery("INSERT INTO login_attempts").
		WithArgs("casper@example.com", cutoff).
		WillReturnRows(sqlmock.NewRows(attemptTestColumns).
			AddRow("casper@example.com", 3, windowStart))

	attempt, err := repo.RecordFailure(context.Background(), "casper@example.com", cutoff)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if attempt.FailedCount != 3 {
		t.Errorf("expected failed_count=3, got %d", attempt.FailedCount)
	}
	if !attempt.WindowStartedAt.Equal(windowStart) {
		t.Errorf("expected window start %v, got %v", windowStart, attempt.WindowStartedAt)
	}
}

func TestRecordFailure_RetriesOnceOnDeadlock(t *testing.T) {
	repo, mock, db := newTestLoginAttemptRepo(t)
	defer db.Close()

	cutoff := time.Now().Add(-15 * time.Minute)

	mock.ExpectQuery("INSERT INTO login_attempts").
		WithArgs("casper@example.com", cutoff).
		WillReturnError(pgError(pgerrcode.DeadlockDetected))
	mock.ExpectQuery("INSERT INTO login_attempts").
		WithArgs("casper@example.com", cutoff).
		WillReturnRows(sqlmock.NewRows(attemptTestColumns).
			AddRow("casper@example.com", 1, time.Now()))

	attempt, err := repo.RecordFailure(context.Background(), "casper@example.com", cutoff)
	if err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if attempt.FailedCount != 1 {
		t.Errorf("expected failed_count=1, got %d", attempt.FailedCount)
	}
}

func TestRecordFailure_NonRetryableErrorIsNotRetried(t *testing.T) {
	repo, mock, db := newTestLoginAttemptRepo(t)
	defer db.Close()

	cutoff := time.Now().Add(-15 * time.Minute)

	mock.ExpectQuery("INSERT INTO login_attempts").
		WithArgs("casper@example.com", cutoff).
		WillReturnError(errors.New("syntax error"))

	_, err := repo.RecordFailure(context.Background(), "casper@example.com", cutoff)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected second attempt: %v", err)
	}
}

func TestGetAttempts_Success(t *testing.T) {
	repo, mock, db := newTestLoginAttemptRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT identifier").
		WithArgs("casper@example.com").
		WillReturnRows(sqlmock.NewRows(attemptTestColumns).
			AddRow("casper@example.com", 4, time.Now()))

	attempt, err := repo.GetAttempts(context.Background(), "casper@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if attempt.FailedCount != 4 {
		t.Errorf("expected failed_count=4, got %d", attempt.FailedCount)
	}
}

func TestGetAttempts_NoFailuresYieldsZeroCount(t *testing.T) {
	repo, mock, db := newTestLoginAttemptRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT identifier").
		WithArgs("fresh@example.com").
		WillReturnRows(sqlmock.NewRows(attemptTestColumns))

	attempt, err := repo.GetAttempts(context.Background(), "fresh@example.com")
	if err != nil {
		t.Fatalf("expected no error for unknown identifier, got %v", err)
	}
	if attempt.FailedCount != 0 {
		t.Errorf("expected zero count, got %d", attempt.FailedCount)
	}
	if attempt.Identifier != "fresh@example.com" {
		t.Errorf("expected identifier to be echoed back, got %s", attempt.Identifier)
	}
}

func TestResetAttempts(t *testing.T) {
	repo, mock, db := newTestLoginAttemptRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM login_attempts").
		WithArgs("casper@example.com").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.ResetAttempts(context.Background(), "casper@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteAttemptsStartedBefore(t *testing.T) {
	repo, mock, db := newTestLoginAttemptRepo(t)
	defer db.Close()

	cutoff := time.Now().Add(-24 * time.Hour)

	mock.ExpectExec("DELETE FROM login_attempts").
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 7))

	deleted, err := repo.DeleteAttemptsStartedBefore(context.Background(), cutoff)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 7 {
		t.Errorf("expected 7 deleted rows, got %d", deleted)
	}
}
