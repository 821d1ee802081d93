// Package models defines the wire DTOs exchanged with the BookSwap backend
// REST API. Field tags follow the backend's snake_case contract; the structs
// themselves are treated as opaque payloads by the auth/session core.
package models

// AuthResponse is the body returned by login, register and refresh.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
}

type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterPayload struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
