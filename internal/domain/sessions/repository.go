package sessions

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, id string) (Session, error)
	// Delete es idempotente: borrar una sesión inexistente no es error.
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
