package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// AccessClaims is the canonical claim set carried by every access token.
// The account identifier lives in the registered "sub" claim and nowhere
// else: every consumer goes through [Token.GetUserID], so no alternate key
// (user_id, id, ...) exists anywhere downstream.
type AccessClaims struct {
	jwt.RegisteredClaims

	// Username and Email duplicate the account identity for display
	// purposes so that request handling does not need a user lookup.
	Username string `json:"username"`
	Email    string `json:"email"`

	// Role is the account access level at issuance time.
	Role Role `json:"role"`

	// SessionID binds the token to its server-side session record.
	SessionID string `json:"session_id"`

	// TwoFAVerified reports whether the two-factor step was satisfied
	// when the token was issued.
	TwoFAVerified bool `json:"two_fa_verified"`
}

// Token wraps a JWT access token with convenience accessors for
// authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [AccessClaims] for claim access.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
//
// UserID is a cached, parsed copy of the "sub" (subject) claim converted to
// int64, populated during parsing to avoid repeated string-to-int parsing.
type Token struct {
	// Token is the underlying JWT token used for signing and claim
	// inspection. Excluded from JSON serialization because only the
	// compact string form is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// AccessClaims provides access to the full claim set of the token.
	AccessClaims

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	// Excluded from JSON serialization; it is an internal server-side cache.
	UserID int64 `json:"-"`
}

// GetUserID extracts the user identifier from the token's "sub" (subject)
// claim, parses it as a base-10 int64, and returns the result.
//
// Returns an error if the subject claim is missing, empty, or cannot be
// converted to int64.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token
// (the signed, base64url-encoded header.payload.signature string).
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
