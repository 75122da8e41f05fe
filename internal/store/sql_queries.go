package store

const (
	userColumns = `user_id, username, email, password_hash, role, email_verified, two_fa_enabled, two_fa_secret, totp_last_counter, password_changed_at, deleted_at, created_at`

	createUser = `INSERT INTO users (username, email, password_hash, role)
    VALUES ($1, $2, $3, $4)
    RETURNING ` + userColumns + `;`

	findUserByEmail = `SELECT ` + userColumns + `
    FROM users
    WHERE LOWER(email) = LOWER($1) AND deleted_at IS NULL;`

	findUserByUsername = `SELECT ` + userColumns + `
    FROM users
    WHERE username = $1 AND deleted_at IS NULL;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE user_id = $1 AND deleted_at IS NULL;`

	findUserByIDIncludingDeleted = `SELECT ` + userColumns + `
    FROM users
    WHERE user_id = $1;`

	updateUserPassword = `UPDATE users
    SET password_hash = $2, password_changed_at = NOW()
    WHERE user_id = $1 AND deleted_at IS NULL;`

	setPendingTwoFASecret = `UPDATE users
    SET two_fa_secret = $2
    WHERE user_id = $1 AND deleted_at IS NULL;`

	enableUserTwoFA = `UPDATE users
    SET two_fa_enabled = TRUE
    WHERE user_id = $1 AND two_fa_secret IS NOT NULL AND deleted_at IS NULL;`

	disableUserTwoFA = `UPDATE users
    SET two_fa_enabled = FALSE, two_fa_secret = NULL, totp_last_counter = 0
    WHERE user_id = $1 AND deleted_at IS NULL;`

	// Strictly-greater guard makes the counter advance a compare-and-swap:
	// two concurrent submissions of the same code leave exactly one winner.
	advanceTOTPCounter = `UPDATE users
    SET totp_last_counter = $2
    WHERE user_id = $1 AND totp_last_counter < $2 AND deleted_at IS NULL;`

	markUserEmailVerified = `UPDATE users
    SET email_verified = TRUE
    WHERE user_id = $1 AND deleted_at IS NULL;`

	softDeleteUser = `UPDATE users
    SET deleted_at = NOW()
    WHERE user_id = $1 AND deleted_at IS NULL;`

	restoreUser = `UPDATE users
    SET deleted_at = NULL
    WHERE user_id = $1 AND deleted_at IS NOT NULL;`
)

const (
	sessionColumns = `session_id, user_id, refresh_hash, prev_refresh_hash, is_valid, ip, user_agent, two_fa_verified, created_at, rotated_at`

	createSession = `INSERT INTO sessions (session_id, user_id, refresh_hash, ip, user_agent, two_fa_verified)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING created_at;`

	findSessionByRefreshHash = `SELECT ` + sessionColumns + `
    FROM sessions
    WHERE refresh_hash = $1;`

	findSessionByPrevRefreshHash = `SELECT ` + sessionColumns + `
    FROM sessions
    WHERE prev_refresh_hash = $1;`

	findSessionByID = `SELECT ` + sessionColumns + `
    FROM sessions
    WHERE session_id = $1;`

	// WHERE-matched expected prior value: of two concurrent refresh calls
	// presenting the same token, exactly one rotation succeeds.
	rotateSessionRefreshHash = `UPDATE sessions
    SET prev_refresh_hash = refresh_hash, refresh_hash = $3, rotated_at = NOW()
    WHERE session_id = $1 AND refresh_hash = $2 AND is_valid;`

	invalidateSession = `UPDATE sessions
    SET is_valid = FALSE
    WHERE session_id = $1;`

	invalidateUserSessions = `UPDATE sessions
    SET is_valid = FALSE
    WHERE user_id = $1 AND is_valid;`

	listUserSessions = `SELECT ` + sessionColumns + `
    FROM sessions
    WHERE user_id = $1 AND is_valid
    ORDER BY created_at DESC;`

	deleteSessionsCreatedBefore = `DELETE FROM sessions
    WHERE created_at < $1;`
)

const (
	appendSecurityEvent = `INSERT INTO security_events (user_id, event_type, metadata)
    VALUES ($1, $2, $3)
    RETURNING event_id, created_at;`

	deleteEventsCreatedBefore = `DELETE FROM security_events
    WHERE created_at < $1;`
)

const (
	insertBackupCode = `INSERT INTO backup_codes (user_id, code_hash)
    VALUES ($1, $2);`

	listUnusedBackupCodes = `SELECT code_id, user_id, code_hash, used, used_at, created_at
    FROM backup_codes
    WHERE user_id = $1 AND NOT used;`

	consumeBackupCode = `UPDATE backup_codes
    SET used = TRUE, used_at = NOW()
    WHERE code_id = $1 AND NOT used;`

	deleteBackupCodes = `DELETE FROM backup_codes
    WHERE user_id = $1;`
)

const (
	// Single round trip: starts a fresh window when the previous one has
	// expired, otherwise increments within the current window.
	recordLoginFailure = `INSERT INTO login_attempts (identifier, failed_count, window_started_at)
    VALUES ($1, 1, NOW())
    ON CONFLICT (identifier) DO UPDATE
    SET failed_count = CASE WHEN login_attempts.window_started_at < $2 THEN 1 ELSE login_attempts.failed_count + 1 END,
        window_started_at = CASE WHEN login_attempts.window_started_at < $2 THEN NOW() ELSE login_attempts.window_started_at END
    RETURNING identifier, failed_count, window_started_at;`

	getLoginAttempts = `SELECT identifier, failed_count, window_started_at
    FROM login_attempts
    WHERE identifier = $1;`

	resetLoginAttempts = `DELETE FROM login_attempts
    WHERE identifier = $1;`

	deleteAttemptsStartedBefore = `DELETE FROM login_attempts
    WHERE window_started_at < $1;`
)

const (
	createEmailToken = `INSERT INTO email_tokens (user_id, purpose, token_hash, expires_at)
    VALUES ($1, $2, $3, $4)
    RETURNING token_id, created_at;`

	consumeEmailToken = `UPDATE email_tokens
    SET used_at = NOW()
    WHERE token_hash = $1 AND purpose = $2 AND used_at IS NULL AND expires_at > NOW()
    RETURNING user_id;`

	invalidateUserEmailTokens = `UPDATE email_tokens
    SET used_at = NOW()
    WHERE user_id = $1 AND purpose = $2 AND used_at IS NULL;`

	deleteTokensExpiredBefore = `DELETE FROM email_tokens
    WHERE expires_at < $1;`
)
