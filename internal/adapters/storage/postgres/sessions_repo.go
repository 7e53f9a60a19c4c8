package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"pet-admin-console/internal/domain/sessions"
)

const uniqueViolation = "23505"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var sessionColumns = []string{
	"id", "backend_token", "username", "email", "roles", "created_at", "expires_at",
}

type SessionsRepo struct {
	pool *pgxpool.Pool
}

func NewSessionsRepo(pool *pgxpool.Pool) *SessionsRepo {
	return &SessionsRepo{pool: pool}
}

func (r *SessionsRepo) Create(ctx context.Context, s sessions.Session) error {
	roles := s.Roles
	if roles == nil {
		roles = []string{}
	}

	query, args, err := psql.Insert("sessions").
		Columns(sessionColumns...).
		Values(s.ID, s.BackendToken, s.Username, s.Email, roles, s.CreatedAt, s.ExpiresAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert session: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return sessions.ErrAlreadyExists
		}
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (r *SessionsRepo) Get(ctx context.Context, id string) (sessions.Session, error) {
	query, args, err := psql.Select(sessionColumns...).
		From("sessions").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return sessions.Session{}, fmt.Errorf("build select session: %w", err)
	}

	var s sessions.Session
	err = r.pool.QueryRow(ctx, query, args...).Scan(
		&s.ID, &s.BackendToken, &s.Username, &s.Email, &s.Roles, &s.CreatedAt, &s.ExpiresAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return sessions.Session{}, sessions.ErrNotFound
	}
	if err != nil {
		return sessions.Session{}, fmt.Errorf("select session: %w", err)
	}
	return s, nil
}

// Delete es idempotente.
func (r *SessionsRepo) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Delete("sessions").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete session: %w", err)
	}
	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (r *SessionsRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := psql.Delete("sessions").Where(sq.LtOrEq{"expires_at": now}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build purge sessions: %w", err)
	}
	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("purge sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}
