package http

// Request bodies accepted by the authentication endpoints. Response shapes
// live in the models package because the service layer produces them.

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type twoFAVerifyRequest struct {
	UserID int64  `json:"user_id"`
	Code   string `json:"code"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type twoFAConfirmRequest struct {
	Code string `json:"code"`
}

type twoFADisableRequest struct {
	Password string `json:"password"`
	Code     string `json:"code"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type deleteAccountRequest struct {
	Password string `json:"password"`
}

type emailRequest struct {
	Email string `json:"email"`
}

type emailTokenRequest struct {
	Token string `json:"token"`
}

type passwordResetConfirmRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}
