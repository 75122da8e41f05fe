package validators

import (
	"context"
	"net/mail"
	"strings"

	"github.com/mzotov/cliptide/models"
)

// Field name constants used to specify which fields should be validated.
// Passed to Validate to restrict validation to a subset of fields.
const (
	// FieldUsername targets the public handle chosen at registration.
	FieldUsername = "username"

	// FieldEmail targets the login email address.
	FieldEmail = "email"

	// FieldPassword targets the plaintext password candidate.
	FieldPassword = "password"
)

const (
	usernameMinLength = 3
	usernameMaxLength = 32

	// passwordMaxLength caps the hashing cost of a single request.
	passwordMaxLength = 512
)

// CredentialsValidator implements the Validator interface for registration
// and password-change input. The password minimum length is configurable
// per deployment; structural rules are fixed.
type CredentialsValidator struct {
	passwordMinLength int
}

// NewCredentialsValidator constructs a CredentialsValidator enforcing the
// given minimum password length and returns it as the Validator interface.
func NewCredentialsValidator(passwordMinLength int) Validator {
	return &CredentialsValidator{passwordMinLength: passwordMinLength}
}

// Validate dispatches validation to the appropriate type-specific method.
// Supports both value and pointer forms of models.Credentials.
func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateCredentials(_ context.Context, creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword}
	}

	for _, field := range fields {
		switch field {
		case FieldUsername:
			if err := v.validateUsername(creds.Username); err != nil {
				return err
			}
		case FieldEmail:
			if err := v.validateEmail(creds.Email); err != nil {
				return err
			}
		case FieldPassword:
			if err := v.validatePassword(creds.Password); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CredentialsValidator) validateUsername(username string) error {
	if username == "" {
		return ErrEmptyUsername
	}
	if len(username) < usernameMinLength {
		return ErrUsernameTooShort
	}
	if len(username) > usernameMaxLength {
		return ErrUsernameTooLong
	}
	for _, r := range username {
		if !isUsernameRune(r) {
			return ErrInvalidUsername
		}
	}
	return nil
}

func (v *CredentialsValidator) validateEmail(email string) error {
	if email == "" {
		return ErrEmptyEmail
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(email, "@") {
		return ErrInvalidEmail
	}
	return nil
}

func (v *CredentialsValidator) validatePassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if len(password) < v.passwordMinLength {
		return ErrPasswordTooShort
	}
	if len(password) > passwordMaxLength {
		return ErrPasswordTooLong
	}
	return nil
}

func isUsernameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '_', r == '-', r == '.':
		return true
	}
	return false
}
