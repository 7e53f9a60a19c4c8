package memory

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"pet-admin-console/internal/domain/sessions"
)

type sessionsRepo struct {
	mu   sync.RWMutex
	byID map[string]sessions.Session
}

func NewSessionsRepo() sessions.Repository {
	return &sessionsRepo{
		byID: make(map[string]sessions.Session),
	}
}

func (r *sessionsRepo) Create(ctx context.Context, s sessions.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(s.ID) == "" {
		return errors.New("session id required")
	}
	if _, exists := r.byID[s.ID]; exists {
		return sessions.ErrAlreadyExists
	}
	r.byID[s.ID] = s
	return nil
}

func (r *sessionsRepo) Get(ctx context.Context, id string) (sessions.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return sessions.Session{}, sessions.ErrNotFound
	}
	return s, nil
}

func (r *sessionsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byID, id)
	return nil
}

func (r *sessionsRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for id, s := range r.byID {
		if s.Expired(now) {
			delete(r.byID, id)
			n++
		}
	}
	return n, nil
}
