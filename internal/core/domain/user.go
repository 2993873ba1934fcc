package domain

// Seed account guaranteed to exist after the first auth call in a fresh
// environment, so the app is usable without prior state.
const (
	SeedEmail    = "test@ticketapp.test"
	SeedPassword = "password123"
)

// User models a registered account. Email is the case-insensitive unique key.
// Passwords are stored as entered: the store is browser-local and single-user,
// credential protection is out of scope.
type User struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is the runtime proof that a user is authenticated. At most one
// exists per runtime; its presence is the sole authorization signal.
type Session struct {
	Email string `json:"email"`
}
