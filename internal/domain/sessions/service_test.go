package sessions

import (
	"context"
	"errors"
	"testing"
	"time"

	"pet-admin-console/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
)

// -------------------------
// Test doubles
// -------------------------

type testRepo struct {
	byID map[string]Session
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Session{}}
}

func (r *testRepo) Create(ctx context.Context, s Session) error {
	if _, ok := r.byID[s.ID]; ok {
		return ErrAlreadyExists
	}
	r.byID[s.ID] = s
	return nil
}

func (r *testRepo) Get(ctx context.Context, id string) (Session, error) {
	s, ok := r.byID[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	return s, nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

func (r *testRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	var n int64
	for id, s := range r.byID {
		if s.Expired(now) {
			delete(r.byID, id)
			n++
		}
	}
	return n, nil
}

type testAuth struct {
	identity   auth.Identity
	err        error
	registered auth.RegisterRequest
}

func (a *testAuth) Login(ctx context.Context, username, password string) (auth.Identity, error) {
	if a.err != nil {
		return auth.Identity{}, a.err
	}
	return a.identity, nil
}

func (a *testAuth) Register(ctx context.Context, req auth.RegisterRequest) (auth.Identity, error) {
	a.registered = req
	if a.err != nil {
		return auth.Identity{}, a.err
	}
	return a.identity, nil
}

func signed(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	s, err := tok.SignedString([]byte("unknown-to-gateway"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

// -------------------------
// Tests
// -------------------------

func TestService_Login_UsesTokenExpiryAndStripsRolePrefix(t *testing.T) {
	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	exp := now.Add(2 * time.Hour)

	repo := newTestRepo()
	authn := &testAuth{identity: auth.Identity{
		Token:    signed(t, exp),
		Username: "admin",
		Email:    "admin@example.com",
		Roles:    []string{"ROLE_ADMIN", "USER"},
	}}
	svc := NewService(repo, authn, 24*time.Hour)
	svc.now = func() time.Time { return now }

	s, err := svc.Login(context.Background(), " admin ", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if s.ID == "" {
		t.Fatalf("expected session id")
	}
	if !s.ExpiresAt.Equal(exp) {
		t.Fatalf("expected expiry from token %v, got %v", exp, s.ExpiresAt)
	}
	if !s.IsAdmin() || len(s.Roles) != 2 || s.Roles[0] != "ADMIN" {
		t.Fatalf("unexpected roles %v", s.Roles)
	}
	if _, ok := repo.byID[s.ID]; !ok {
		t.Fatalf("session not persisted")
	}
}

func TestService_Login_FallsBackToTTLForOpaqueToken(t *testing.T) {
	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	svc := NewService(newTestRepo(), &testAuth{identity: auth.Identity{Token: "opaque", Username: "u"}}, time.Hour)
	svc.now = func() time.Time { return now }

	s, err := svc.Login(context.Background(), "u", "p")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !s.ExpiresAt.Equal(now.Add(time.Hour)) {
		t.Fatalf("expected ttl expiry, got %v", s.ExpiresAt)
	}
}

func TestService_Login_RejectsBlankAndPropagatesAuthError(t *testing.T) {
	svc := NewService(newTestRepo(), &testAuth{err: auth.ErrInvalidCredentials}, time.Hour)

	if _, err := svc.Login(context.Background(), "  ", "x"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "u", "bad"); !errors.Is(err, auth.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestService_Register_NormalizesPhoneBeforeSubmit(t *testing.T) {
	authn := &testAuth{identity: auth.Identity{Token: "t", Username: "anna"}}
	svc := NewService(newTestRepo(), authn, time.Hour)

	_, err := svc.Register(context.Background(), RegisterInput{
		Username:  "anna",
		Email:     "anna@example.com",
		Password:  "secret1",
		FirstName: "Anna",
		LastName:  "Ivanova",
		Phone:     "89161112233",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if authn.registered.Phone != "+7 916 111 22 33" {
		t.Fatalf("phone not normalized: %q", authn.registered.Phone)
	}
}

func TestService_Register_Validation(t *testing.T) {
	authn := &testAuth{identity: auth.Identity{Token: "t"}}
	svc := NewService(newTestRepo(), authn, time.Hour)

	_, err := svc.Register(context.Background(), RegisterInput{
		Username: "an",
		Email:    "not-an-email",
		Password: "123",
		Phone:    "8916",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if authn.registered.Username != "" {
		t.Fatalf("backend must not be called on invalid input")
	}
}

func TestService_Resolve_ExpiredIsDeleted(t *testing.T) {
	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	repo := newTestRepo()
	repo.byID["s1"] = Session{ID: "s1", ExpiresAt: now.Add(-time.Second)}
	repo.byID["s2"] = Session{ID: "s2", ExpiresAt: now.Add(time.Minute)}

	svc := NewService(repo, &testAuth{}, time.Hour)
	svc.now = func() time.Time { return now }

	if _, err := svc.Resolve(context.Background(), "s1"); !errors.Is(err, ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
	if _, ok := repo.byID["s1"]; ok {
		t.Fatalf("expired session should be deleted")
	}
	if _, err := svc.Resolve(context.Background(), "s2"); err != nil {
		t.Fatalf("Resolve live session: %v", err)
	}
	if _, err := svc.Resolve(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_LogoutIdempotentAndPurge(t *testing.T) {
	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	repo := newTestRepo()
	repo.byID["old"] = Session{ID: "old", ExpiresAt: now.Add(-time.Hour)}
	repo.byID["live"] = Session{ID: "live", ExpiresAt: now.Add(time.Hour)}

	svc := NewService(repo, &testAuth{}, time.Hour)
	svc.now = func() time.Time { return now }

	if err := svc.Logout(context.Background(), "live"); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if err := svc.Logout(context.Background(), "live"); err != nil {
		t.Fatalf("second Logout must be a no-op: %v", err)
	}

	n, err := svc.PurgeExpired(context.Background())
	if err != nil || n != 1 {
		t.Fatalf("expected 1 purged, got %d (%v)", n, err)
	}
	if len(repo.byID) != 0 {
		t.Fatalf("expected empty repo, got %v", repo.byID)
	}
}

func TestContext_RoundTrip(t *testing.T) {
	ctx := WithSession(context.Background(), Session{ID: "s", Roles: []string{"ROLE_ADMIN"}})
	s, ok := FromContext(ctx)
	if !ok || s.ID != "s" || !IsAdmin(ctx) {
		t.Fatalf("unexpected session from context: %+v", s)
	}
	if IsAdmin(context.Background()) {
		t.Fatalf("no session must not be admin")
	}
}
