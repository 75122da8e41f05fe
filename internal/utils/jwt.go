package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mzotov/cliptide/models"
)

// AccessTokenParams carries everything needed to mint one access token.
// All fields are required except TwoFAVerified.
type AccessTokenParams struct {
	Issuer        string
	User          models.User
	SessionID     string
	TwoFAVerified bool
	TokenDuration time.Duration
	SignKey       string
}

// GenerateAccessToken creates a signed HMAC-SHA256 JWT access token.
//
// The token carries the canonical [models.AccessClaims] set:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID encoded as a string — the only claim
//     that identifies the account
//   - IssuedAt  (iat) / ExpiresAt (exp): issuance window
//   - username, email, role, session_id, two_fa_verified
//
// Returns an error if any required parameter is empty or zero.
func GenerateAccessToken(p AccessTokenParams) (models.Token, error) {
	if p.Issuer == "" || p.SessionID == "" || p.TokenDuration == 0 || p.SignKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &models.AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    p.Issuer,
			Subject:   strconv.FormatInt(p.User.UserID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.TokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Username:      p.User.Username,
		Email:         p.User.Email,
		Role:          p.User.Role,
		SessionID:     p.SessionID,
		TwoFAVerified: p.TwoFAVerified,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(p.SignKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{
		Token:        token,
		AccessClaims: *claims,
		SignedString: tokenString,
		UserID:       p.User.UserID,
	}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence and conversion to int64 UserID
//
// Returns the decoded token model on success, or an error if validation
// fails, claims are missing, or the subject cannot be parsed.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &models.AccessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	userIDStr, err := token.Claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if userIDStr == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during converting subject to UserID: %w", err)
	}

	return models.Token{
		Token:        token,
		AccessClaims: *claims,
		SignedString: tokenString,
		UserID:       userID,
	}, nil
}

// ParseBearerToken extracts the token part of an Authorization header of
// the standard "Bearer <token>" form.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
