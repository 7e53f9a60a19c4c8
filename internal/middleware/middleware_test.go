package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pet-admin-console/internal/adapters/storage/memory"
	"pet-admin-console/internal/domain/sessions"
	"pet-admin-console/internal/platform/logger"
	"pet-admin-console/internal/ports/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuth struct{}

func (fakeAuth) Login(_ context.Context, username, _ string) (auth.Identity, error) {
	return auth.Identity{Token: "jwt", Username: username, Roles: []string{"USER"}}, nil
}

func (fakeAuth) Register(_ context.Context, req auth.RegisterRequest) (auth.Identity, error) {
	return auth.Identity{Token: "jwt", Username: req.Username}, nil
}

func newSessions(t *testing.T) (*sessions.Service, sessions.Session) {
	t.Helper()
	svc := sessions.NewService(memory.NewSessionsRepo(), fakeAuth{}, time.Hour)
	s, err := svc.Login(context.Background(), "anna", "secret1")
	require.NoError(t, err)
	return svc, s
}

func echoUser(w http.ResponseWriter, r *http.Request) {
	if s, ok := sessions.FromContext(r.Context()); ok {
		_, _ = w.Write([]byte(s.Username))
		return
	}
	w.WriteHeader(http.StatusUnauthorized)
}

func TestSessionContext_ResolvesBearerSession(t *testing.T) {
	svc, s := newSessions(t)
	h := SessionContext(svc, false)(http.HandlerFunc(echoUser))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+s.ID)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "anna", rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer unknown")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionContext_DebugHeadersOnlyInDevMode(t *testing.T) {
	svc, _ := newSessions(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderDebugUser, "root")
	req.Header.Set(HeaderDebugRoles, "admin, user")

	rec := httptest.NewRecorder()
	SessionContext(svc, false)(http.HandlerFunc(echoUser)).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var got sessions.Session
	rec = httptest.NewRecorder()
	SessionContext(svc, true)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = sessions.FromContext(r.Context())
	})).ServeHTTP(rec, req)
	assert.Equal(t, "root", got.Username)
	assert.Equal(t, []string{"ADMIN", "USER"}, got.Roles)
	assert.True(t, got.IsAdmin())
}

func TestLogoutOnUnauthorized_ClosesSession(t *testing.T) {
	svc, s := newSessions(t)

	upstream401 := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	h := SessionContext(svc, false)(LogoutOnUnauthorized(svc, logger.Nop())(upstream401))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+s.ID)
	h.ServeHTTP(httptest.NewRecorder(), req)

	_, err := svc.Resolve(context.Background(), s.ID)
	assert.ErrorIs(t, err, sessions.ErrNotFound)
}

func TestLogoutOnUnauthorized_KeepsSessionOnOtherStatus(t *testing.T) {
	svc, s := newSessions(t)

	forbidden := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	h := SessionContext(svc, false)(LogoutOnUnauthorized(svc, logger.Nop())(forbidden))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+s.ID)
	h.ServeHTTP(httptest.NewRecorder(), req)

	_, err := svc.Resolve(context.Background(), s.ID)
	assert.NoError(t, err)
}

func TestRecover_Returns500(t *testing.T) {
	h := Recover(logger.Nop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pets", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal error")
}
