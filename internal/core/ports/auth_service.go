package ports

import (
	"context"

	"github.com/ticketapp/ticket-system/internal/core/domain"
)

// AuthService manages accounts and the single runtime session.
type AuthService interface {
	// Signup registers a new account and establishes a session for it.
	Signup(ctx context.Context, email, password string) (*domain.User, error)
	// Login establishes a session for an existing account.
	Login(ctx context.Context, email, password string) (*domain.User, error)
	// Logout clears the session unconditionally. It has no error path.
	Logout(ctx context.Context)
	// Session returns the active session, or nil when none is stored or the
	// stored shape is invalid.
	Session(ctx context.Context) *domain.Session
}
