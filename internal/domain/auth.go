package domain

import "context"

// Credentials carries the email/password pair submitted on register and login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenPair is the result of a successful register or login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthService is the credential collaborator consumed by the HTTP layer.
// The broadcast engine never touches it.
type AuthService interface {
	// Register creates a new user and returns a fresh token pair.
	Register(ctx context.Context, creds Credentials) (TokenPair, error)
	// Login verifies credentials and returns a fresh token pair.
	Login(ctx context.Context, creds Credentials) (TokenPair, error)
	// Logout invalidates the user's stored refresh token.
	Logout(ctx context.Context, userID string) error
	// Refresh issues a new access token for a user whose refresh token is
	// still valid on record.
	Refresh(ctx context.Context, userID string) (string, error)
}

// AuthResponse is the JSON body returned by every auth endpoint.
type AuthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// NewAuthResponse builds an AuthResponse with an optional message.
func NewAuthResponse(success bool, message string) AuthResponse {
	return AuthResponse{Success: success, Message: message}
}
