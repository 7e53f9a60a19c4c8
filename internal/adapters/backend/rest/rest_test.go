package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pet-admin-console/internal/domain/owners"
	"pet-admin-console/internal/domain/pets"
	"pet-admin-console/internal/domain/sessions"
	"pet-admin-console/internal/domain/users"
	"pet-admin-console/internal/ports/auth"
	"pet-admin-console/internal/ports/backend"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewClient(Config{BaseURL: srv.URL + "/api", Timeout: time.Second})
	require.NoError(t, err)
	return c
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func withToken(token string) context.Context {
	return sessions.WithSession(context.Background(), sessions.Session{ID: "s1", BackendToken: token})
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient(Config{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestOwnersRepo_ForwardsTokenAndDecodes(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/owners/{id}", func(w http.ResponseWriter, req *http.Request) {
		if req.Header.Get("Authorization") != "Bearer jwt-1" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "no token"})
			return
		}
		if chi.URLParam(req, "id") != "1" {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "Owner not found"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"id": 1, "firstName": "Anna", "lastName": "Ivanova",
			"email": "anna@example.com", "phone": "+7 999 123 45 99", "address": "Moscow",
			"createdAt": "2025-01-31T10:20:30.123",
			"pets": []map[string]any{{"id": 7, "name": "Rex", "type": "DOG", "breed": "Shepherd", "dateOfBirth": "2020-03-02", "ownerId": 1}},
		})
	})
	repo := NewOwnersRepo(newTestClient(t, r))

	o, err := repo.GetByID(withToken("jwt-1"), 1)
	require.NoError(t, err)
	assert.Equal(t, "Anna Ivanova", o.FullName())
	assert.Equal(t, 2025, o.CreatedAt.Year())
	require.Len(t, o.Pets, 1)
	assert.Equal(t, pets.TypeDog, o.Pets[0].Type)
	assert.Equal(t, time.March, o.Pets[0].DateOfBirth.Month())

	_, err = repo.GetByID(withToken("jwt-1"), 2)
	assert.ErrorIs(t, err, owners.ErrNotFound)

	_, err = repo.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, backend.ErrUnauthorized)
}

func TestOwnersRepo_ConflictAndValidation(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/owners", func(w http.ResponseWriter, req *http.Request) {
		var body ownerRequestDTO
		_ = json.NewDecoder(req.Body).Decode(&body)
		if body.Email == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "email required"})
			return
		}
		writeJSON(w, http.StatusConflict, map[string]string{"message": "Owner with email already exists"})
	})
	repo := NewOwnersRepo(newTestClient(t, r))

	_, err := repo.Create(withToken("t"), owners.Input{FirstName: "A", LastName: "B", Email: "a@example.com"})
	assert.ErrorIs(t, err, backend.ErrConflict)
	var ce *backend.ConflictError
	require.ErrorAs(t, err, &ce)
	assert.Contains(t, ce.Message, "already exists")

	_, err = repo.Create(withToken("t"), owners.Input{FirstName: "A", LastName: "B"})
	assert.ErrorIs(t, err, owners.ErrInvalidInput)
	assert.Contains(t, err.Error(), "email required")
}

func TestPetsRepo_ListSendsFiltersAndCreateSendsDate(t *testing.T) {
	var gotType, gotOwner string
	var created map[string]any

	r := chi.NewRouter()
	r.Get("/api/pets", func(w http.ResponseWriter, req *http.Request) {
		gotType = req.URL.Query().Get("type")
		gotOwner = req.URL.Query().Get("ownerId")
		writeJSON(w, http.StatusOK, []map[string]any{{"id": 1, "name": "Murka", "type": "CAT", "breed": "Siamese", "ownerId": 3}})
	})
	r.Post("/api/pets", func(w http.ResponseWriter, req *http.Request) {
		_ = json.NewDecoder(req.Body).Decode(&created)
		writeJSON(w, http.StatusCreated, map[string]any{"id": 2, "name": "Rex", "type": "DOG", "dateOfBirth": "2020-01-02", "ownerId": 3})
	})
	r.Get("/api/pets/my", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"message": "down"})
	})
	repo := NewPetsRepo(newTestClient(t, r))
	ctx := withToken("t")

	items, err := repo.List(ctx, pets.Query{Type: pets.TypeCat, OwnerID: 3})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "CAT", gotType)
	assert.Equal(t, "3", gotOwner)

	p, err := repo.Create(ctx, pets.Input{Name: "Rex", Type: pets.TypeDog, Breed: "x", OwnerID: 3, DateOfBirth: time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	assert.EqualValues(t, 2, p.ID)
	assert.Equal(t, "2020-01-02", created["dateOfBirth"])
	assert.NotContains(t, created, "color")

	_, err = repo.ListMine(ctx)
	assert.ErrorIs(t, err, backend.ErrUnavailable)
}

func TestAuthenticator_LoginAndRegister(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/auth/login", func(w http.ResponseWriter, req *http.Request) {
		var body loginDTO
		_ = json.NewDecoder(req.Body).Decode(&body)
		if body.Password != "secret1" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Bad credentials"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"token": "jwt", "type": "Bearer", "username": body.Username, "roles": []string{"ROLE_ADMIN"}})
	})
	r.Post("/api/auth/register", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Username already exists"})
	})
	a := NewAuthenticator(newTestClient(t, r))

	id, err := a.Login(context.Background(), "admin", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "jwt", id.Token)
	assert.Equal(t, []string{"ADMIN"}, id.Roles)

	_, err = a.Login(context.Background(), "admin", "bad")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = a.Register(context.Background(), auth.RegisterRequest{Username: "admin"})
	assert.ErrorIs(t, err, auth.ErrUserExists)
}

func TestUsersRepo_WrongPasswordAndStatistics(t *testing.T) {
	r := chi.NewRouter()
	r.Put("/api/users/me/password", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Current password is incorrect"})
	})
	r.Get("/api/statistics", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"totalOwners": 2, "totalPets": 3, "averagePetsPerOwner": 1,
			"petsByType": map[string]int{"DOG": 2, "CAT": 1, "DRAGON": 9},
		})
	})
	c := newTestClient(t, r)

	err := NewUsersRepo(c).ChangePassword(withToken("t"), "old", "newpass")
	assert.ErrorIs(t, err, users.ErrWrongPassword)

	st, err := NewStatisticsRepo(c).Get(withToken("t"))
	require.NoError(t, err)
	assert.EqualValues(t, 3, st.TotalPets)
	assert.EqualValues(t, 2, st.PetsByType[pets.TypeDog])
	assert.Len(t, st.PetsByType, 2)
}
