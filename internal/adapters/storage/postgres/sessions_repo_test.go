package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"pet-admin-console/internal/domain/sessions"
)

// startPostgres levanta un contenedor efímero; se salta con -short.
func startPostgres(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("postgres container test skipped in -short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "testuser",
				"POSTGRES_PASSWORD": "testpass",
				"POSTGRES_DB":       "testdb",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	return fmt.Sprintf("postgres://testuser:testpass@%s:%s/testdb?sslmode=disable", host, port.Port())
}

func TestOpen_RequiresDSN(t *testing.T) {
	_, err := Open(context.Background(), Options{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestSessionsRepo_RoundTripAndPurge(t *testing.T) {
	dsn := startPostgres(t)
	ctx := context.Background()

	pool, err := Open(ctx, Options{DSN: dsn, MaxConns: 4})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, Migrate(ctx, pool))
	// idempotente
	require.NoError(t, Migrate(ctx, pool))

	repo := NewSessionsRepo(pool)
	now := time.Now().UTC().Truncate(time.Microsecond)

	live := sessions.Session{
		ID:           "live",
		BackendToken: "jwt",
		Username:     "admin",
		Email:        "admin@example.com",
		Roles:        []string{"ADMIN", "USER"},
		CreatedAt:    now,
		ExpiresAt:    now.Add(time.Hour),
	}
	require.NoError(t, repo.Create(ctx, live))
	assert.ErrorIs(t, repo.Create(ctx, live), sessions.ErrAlreadyExists)

	got, err := repo.Get(ctx, "live")
	require.NoError(t, err)
	assert.Equal(t, live.Roles, got.Roles)
	assert.True(t, got.ExpiresAt.Equal(live.ExpiresAt))
	assert.True(t, got.IsAdmin())

	require.NoError(t, repo.Create(ctx, sessions.Session{ID: "old", Username: "u", CreatedAt: now, ExpiresAt: now.Add(-time.Minute)}))

	n, err := repo.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	_, err = repo.Get(ctx, "old")
	assert.ErrorIs(t, err, sessions.ErrNotFound)

	require.NoError(t, repo.Delete(ctx, "live"))
	require.NoError(t, repo.Delete(ctx, "live"))
}
