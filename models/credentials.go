package models

// Credentials carries the plaintext registration or login input on its way
// from the transport layer to the authentication service. It exists only in
// memory for the duration of a request and is never persisted or logged.
type Credentials struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
