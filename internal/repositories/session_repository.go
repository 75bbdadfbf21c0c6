package repositories

import (
	"context"
	"sync"
	"time"

	"tripgenius/internal/models/db_models"
)

// SessionRepository owns the session collection. Expiry policy lives
// in the session service; the repository only stores and scans.
type SessionRepository interface {
	Set(ctx context.Context, session db_models.Session) error
	Get(ctx context.Context, token string) (*db_models.Session, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
	Count(ctx context.Context) (int, error)
}

type sessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]db_models.Session
}

func NewSessionRepository() SessionRepository {
	return &sessionRepository{
		sessions: make(map[string]db_models.Session),
	}
}

func (r *sessionRepository) Set(ctx context.Context, session db_models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[session.Token] = session
	return nil
}

func (r *sessionRepository) Get(ctx context.Context, token string) (*db_models.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[token]
	if !ok {
		return nil, nil
	}
	return &session, nil
}

func (r *sessionRepository) Delete(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, token)
	return nil
}

// DeleteExpired removes every session past its expiry in one pass and
// reports how many were purged.
func (r *sessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	purged := 0
	for token, session := range r.sessions {
		if session.Expired(now) {
			delete(r.sessions, token)
			purged++
		}
	}
	return purged, nil
}

func (r *sessionRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions), nil
}
