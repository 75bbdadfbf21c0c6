package services

import (
	"context"
	"log"
	"time"

	"tripgenius/internal/models/db_models"
	"tripgenius/internal/repositories"
	"tripgenius/pkg/utils"
)

const (
	// SessionTTL is the absolute lifetime of a session token.
	SessionTTL = 7 * 24 * time.Hour

	// SweepInterval is how often expired sessions are purged in the
	// background, independent of lookups.
	SweepInterval = time.Hour

	sessionTokenBytes = 32
)

type SessionServiceInterface interface {
	Create(ctx context.Context, userID string) (string, error)
	Validate(ctx context.Context, token string) (string, error)
	Revoke(ctx context.Context, token string) error
	Sweep(ctx context.Context) (int, error)
}

type SessionService struct {
	sessionRepo repositories.SessionRepository
	now         func() time.Time
}

func NewSessionService(sessionRepo repositories.SessionRepository) SessionServiceInterface {
	return &SessionService{
		sessionRepo: sessionRepo,
		now:         time.Now,
	}
}

// NewSessionServiceWithClock lets tests control the clock.
func NewSessionServiceWithClock(sessionRepo repositories.SessionRepository, now func() time.Time) SessionServiceInterface {
	return &SessionService{
		sessionRepo: sessionRepo,
		now:         now,
	}
}

func (s *SessionService) Create(ctx context.Context, userID string) (string, error) {
	token, err := utils.GenerateSecureToken(sessionTokenBytes)
	if err != nil {
		return "", utils.ErrInternal
	}

	session := db_models.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: s.now().Add(SessionTTL),
	}
	if err := s.sessionRepo.Set(ctx, session); err != nil {
		return "", utils.ErrInternal
	}

	return token, nil
}

// Validate resolves a token to its user id. A missing token and an
// expired token are both unauthenticated to the caller, but the two
// cases stay distinguishable here for the logs. Expired sessions are
// deleted on first access.
func (s *SessionService) Validate(ctx context.Context, token string) (string, error) {
	session, err := s.sessionRepo.Get(ctx, token)
	if err != nil {
		return "", utils.ErrInternal
	}
	if session == nil {
		return "", utils.ErrSessionNotFound
	}

	if session.Expired(s.now()) {
		if err := s.sessionRepo.Delete(ctx, token); err != nil {
			return "", utils.ErrInternal
		}
		return "", utils.ErrSessionExpired
	}

	return session.UserID, nil
}

// Revoke deletes the session. Revoking an unknown token is a no-op.
func (s *SessionService) Revoke(ctx context.Context, token string) error {
	return s.sessionRepo.Delete(ctx, token)
}

func (s *SessionService) Sweep(ctx context.Context) (int, error) {
	purged, err := s.sessionRepo.DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, utils.ErrInternal
	}
	if purged > 0 {
		log.Printf("Session sweep purged %d expired sessions", purged)
	}
	return purged, nil
}
