package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ticketapp/ticket-system/internal/core/domain"
	"github.com/ticketapp/ticket-system/internal/core/kv"
	"github.com/ticketapp/ticket-system/internal/core/ports"
)

// AuthService implements signup, login, logout, and session lookup over the
// persistent store.
type AuthService struct {
	store ports.Store
	log   zerolog.Logger
}

func NewAuthService(store ports.Store, log zerolog.Logger) *AuthService {
	return &AuthService{store: store, log: log}
}

type signupForm struct {
	Email    string `validate:"required"`
	Password string `validate:"required,min=6"`
}

type loginForm struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

// ensureSeedAccount guarantees the well-known test account exists, so a
// fresh environment is usable without prior state. Runs at the start of
// every signup and login; idempotent. Returns the user collection after
// seeding.
func (s *AuthService) ensureSeedAccount(ctx context.Context) []domain.User {
	users := kv.ReadJSON(ctx, s.store, ports.UsersKey, []domain.User(nil))
	for _, u := range users {
		if strings.EqualFold(u.Email, domain.SeedEmail) && u.Password == domain.SeedPassword {
			return users
		}
	}
	users = append(users, domain.User{Email: domain.SeedEmail, Password: domain.SeedPassword})
	if err := kv.WriteJSON(ctx, s.store, ports.UsersKey, users); err != nil {
		s.log.Warn().Err(err).Msg("failed to persist seed account")
	}
	return users
}

// Signup registers a new account and establishes a session for it. Email
// uniqueness is case-insensitive.
func (s *AuthService) Signup(ctx context.Context, email, password string) (*domain.User, error) {
	users := s.ensureSeedAccount(ctx)

	if err := firstViolation(signupForm{Email: email, Password: password}); err != nil {
		return nil, err
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return nil, domain.FieldViolation("email", "An account with this email already exists")
		}
	}

	user := domain.User{Email: email, Password: password}
	users = append(users, user)
	if err := kv.WriteJSON(ctx, s.store, ports.UsersKey, users); err != nil {
		s.log.Error().Err(err).Msg("failed to persist users")
		return nil, domain.Transient("Could not save your account. Please try again.")
	}
	if err := s.establishSession(ctx, user.Email); err != nil {
		return nil, err
	}

	s.log.Info().Str("email", user.Email).Msg("account created")
	return &user, nil
}

// Login establishes a session when email (case-insensitive) and password
// (exact) match a stored account simultaneously.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	users := s.ensureSeedAccount(ctx)

	if err := firstViolation(loginForm{Email: email, Password: password}); err != nil {
		return nil, err
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, email) && u.Password == password {
			if err := s.establishSession(ctx, u.Email); err != nil {
				return nil, err
			}
			s.log.Info().Str("email", u.Email).Msg("logged in")
			user := u
			return &user, nil
		}
	}

	// Both fields are marked invalid without disclosing which one was wrong,
	// so the response does not leak which emails are registered.
	const msg = "Invalid email or password"
	return nil, domain.AuthFailure(msg, map[string]string{"email": msg, "password": msg})
}

// Logout clears the session unconditionally.
func (s *AuthService) Logout(ctx context.Context) {
	if err := kv.Remove(ctx, s.store, ports.SessionKey); err != nil {
		s.log.Warn().Err(err).Msg("failed to clear session")
	}
}

// Session returns the active session, or nil when none is stored or the
// stored shape is invalid.
func (s *AuthService) Session(ctx context.Context) *domain.Session {
	sess := kv.ReadJSON(ctx, s.store, ports.SessionKey, (*domain.Session)(nil))
	if sess == nil || sess.Email == "" {
		return nil
	}
	return sess
}

func (s *AuthService) establishSession(ctx context.Context, email string) error {
	if err := kv.WriteJSON(ctx, s.store, ports.SessionKey, domain.Session{Email: email}); err != nil {
		s.log.Error().Err(err).Msg("failed to persist session")
		return domain.Transient("Could not start your session. Please try again.")
	}
	return nil
}
