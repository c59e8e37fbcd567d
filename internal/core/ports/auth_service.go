package ports

import "context"

// AuthService issues and verifies the single signed credential type used to
// gate resource access. No roles, scopes, or refresh tokens exist.
type AuthService interface {
	// Login compares the supplied pair against the configured static
	// credentials and returns a signed token on success.
	Login(ctx context.Context, username, password string) (string, error)
	// Verify checks a raw token and returns the subject it identifies.
	Verify(raw string) (string, error)
}
