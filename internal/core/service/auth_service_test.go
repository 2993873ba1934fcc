package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ticketapp/ticket-system/internal/core/domain"
	"github.com/ticketapp/ticket-system/internal/core/kv"
	"github.com/ticketapp/ticket-system/internal/core/ports"
)

// stubStore is an in-memory ports.Store shared by the service tests.
type stubStore struct {
	docs map[string][]byte
}

func newStubStore() *stubStore {
	return &stubStore{docs: make(map[string][]byte)}
}

func (s *stubStore) Read(_ context.Context, key string) ([]byte, error) {
	data, ok := s.docs[key]
	if !ok {
		return nil, domain.ErrNoDocument
	}
	return data, nil
}

func (s *stubStore) Write(_ context.Context, key string, data []byte) error {
	s.docs[key] = data
	return nil
}

func (s *stubStore) Remove(_ context.Context, key string) error {
	delete(s.docs, key)
	return nil
}

func newTestAuthService() (*AuthService, *stubStore) {
	store := newStubStore()
	return NewAuthService(store, zerolog.Nop()), store
}

func TestAuthService_SeedAccountLogin(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	user, err := svc.Login(ctx, domain.SeedEmail, domain.SeedPassword)
	if err != nil {
		t.Fatalf("seed login failed: %v", err)
	}
	if user.Email != domain.SeedEmail {
		t.Fatalf("unexpected user: %+v", user)
	}

	sess := svc.Session(ctx)
	if sess == nil || sess.Email != domain.SeedEmail {
		t.Fatalf("expected session for seed account, got %+v", sess)
	}
}

func TestAuthService_Signup_Success(t *testing.T) {
	svc, store := newTestAuthService()
	ctx := context.Background()

	user, err := svc.Signup(ctx, "alice@example.com", "s3cret99")
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if sess := svc.Session(ctx); sess == nil || sess.Email != "alice@example.com" {
		t.Fatalf("expected session for new account, got %+v", sess)
	}

	users := kv.ReadJSON(ctx, store, ports.UsersKey, []domain.User(nil))
	if len(users) != 2 { // seed + alice
		t.Fatalf("expected 2 stored users, got %d", len(users))
	}
}

func TestAuthService_Signup_Validation(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, "", "s3cret99")
	if domain.KindOf(err) != domain.KindValidation {
		t.Fatalf("expected validation fault, got %v", err)
	}
	if _, ok := domain.FieldsOf(err)["email"]; !ok {
		t.Fatalf("expected email field message, got %v", domain.FieldsOf(err))
	}

	_, err = svc.Signup(ctx, "bob@example.com", "short")
	if domain.KindOf(err) != domain.KindValidation {
		t.Fatalf("expected validation fault for short password, got %v", err)
	}
	if _, ok := domain.FieldsOf(err)["password"]; !ok {
		t.Fatalf("expected password field message, got %v", domain.FieldsOf(err))
	}
}

func TestAuthService_Signup_DuplicateEmailAnyCase(t *testing.T) {
	svc, store := newTestAuthService()
	ctx := context.Background()

	if _, err := svc.Signup(ctx, "Carol@Example.com", "longenough"); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}

	_, err := svc.Signup(ctx, "carol@example.com", "different1")
	if domain.KindOf(err) != domain.KindValidation {
		t.Fatalf("expected validation fault, got %v", err)
	}
	if _, ok := domain.FieldsOf(err)["email"]; !ok {
		t.Fatalf("expected email field message, got %v", domain.FieldsOf(err))
	}

	users := kv.ReadJSON(ctx, store, ports.UsersKey, []domain.User(nil))
	if len(users) != 2 { // seed + Carol, no duplicate
		t.Fatalf("expected 2 stored users, got %d", len(users))
	}
}

func TestAuthService_Login_NonDisclosure(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	for _, tc := range []struct {
		name, email, password string
	}{
		{"unknown email", "ghost@example.com", "whatever1"},
		{"wrong password", domain.SeedEmail, "wrongpass"},
	} {
		_, err := svc.Login(ctx, tc.email, tc.password)
		if domain.KindOf(err) != domain.KindAuth {
			t.Fatalf("%s: expected auth fault, got %v", tc.name, err)
		}
		fields := domain.FieldsOf(err)
		if fields["email"] == "" || fields["password"] == "" {
			t.Fatalf("%s: expected both fields marked invalid, got %v", tc.name, fields)
		}
		if fields["email"] != fields["password"] {
			t.Fatalf("%s: messages must not distinguish the failing field: %v", tc.name, fields)
		}
		if svc.Session(ctx) != nil {
			t.Fatalf("%s: no session must be created on failed login", tc.name)
		}
	}
}

func TestAuthService_Login_EmptyFields(t *testing.T) {
	svc, _ := newTestAuthService()

	_, err := svc.Login(context.Background(), "", "")
	if domain.KindOf(err) != domain.KindValidation {
		t.Fatalf("expected validation fault, got %v", err)
	}
}

func TestAuthService_Logout(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	if _, err := svc.Login(ctx, domain.SeedEmail, domain.SeedPassword); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	svc.Logout(ctx)
	if svc.Session(ctx) != nil {
		t.Fatalf("expected no session after logout")
	}

	// Logging out with no session is fine.
	svc.Logout(ctx)
}

func TestAuthService_Session_InvalidShape(t *testing.T) {
	svc, store := newTestAuthService()
	ctx := context.Background()

	store.docs[ports.SessionKey] = []byte("{broken")
	if svc.Session(ctx) != nil {
		t.Fatalf("expected nil session for malformed document")
	}

	store.docs[ports.SessionKey] = []byte(`{"email":""}`)
	if svc.Session(ctx) != nil {
		t.Fatalf("expected nil session for empty email")
	}
}
