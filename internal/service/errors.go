package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both unknown identifier and wrong
	// password. Login reports the two identically so the endpoint cannot
	// be used to enumerate registered addresses.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrCredentialTaken is returned by registration when the username or
	// email is already in use.
	ErrCredentialTaken = errors.New("username or email already taken")

	// ErrRateLimited means the identifier exhausted its failed-login
	// window and further attempts are denied until the window expires.
	ErrRateLimited = errors.New("too many failed attempts")

	ErrWrongPassword           = errors.New("wrong password")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	// ErrSessionRevoked means the presented refresh token belongs to a
	// session that is no longer valid (logout, password change, replay).
	ErrSessionRevoked = errors.New("session revoked")

	ErrInvalidTwoFactorCode   = errors.New("invalid two-factor code")
	ErrTwoFAChallengeExpired  = errors.New("two-factor challenge expired")
	ErrTwoFALockout           = errors.New("too many two-factor attempts")
	ErrTwoFAAlreadyEnabled    = errors.New("two-factor authentication already enabled")
	ErrTwoFANotEnabled        = errors.New("two-factor authentication not enabled")
	ErrTwoFASetupNotInitiated = errors.New("two-factor setup not initiated")

	ErrEmailTokenInvalid    = errors.New("email token is invalid or expired")
	ErrEmailAlreadyVerified = errors.New("email already verified")

	// ErrPermissionDenied is returned when a non-admin account reaches an
	// admin operation.
	ErrPermissionDenied = errors.New("permission denied")

	ErrAccountNotFound   = errors.New("account not found")
	ErrAccountNotDeleted = errors.New("account is not scheduled for deletion")
	ErrSessionNotOwned   = errors.New("session does not belong to the account")
)
