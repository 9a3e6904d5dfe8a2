package repositories

import (
	"context"
	"sync"
	"time"

	"bank-console/internal/models"

	"github.com/google/uuid"
)

// MemorySessionRepository keeps sessions in process. Expired sessions are
// treated as missing and dropped on access.
type MemorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]models.Session
	now      func() time.Time
}

func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{
		sessions: make(map[uuid.UUID]models.Session),
		now:      time.Now,
	}
}

func (r *MemorySessionRepository) Save(ctx context.Context, session *models.Session) error {
	if session == nil || session.ID == uuid.Nil {
		return ErrInvalidSession
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = *session
	return nil
}

func (r *MemorySessionRepository) Get(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	r.mu.RLock()
	session, ok := r.sessions[id]
	r.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}

	if session.IsExpired(r.now()) {
		r.mu.Lock()
		delete(r.sessions, id)
		r.mu.Unlock()
		return nil, ErrSessionNotFound
	}

	return &session, nil
}

func (r *MemorySessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

// Count returns the number of live sessions and prunes expired ones
func (r *MemorySessionRepository) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for id, session := range r.sessions {
		if session.IsExpired(now) {
			delete(r.sessions, id)
		}
	}
	return len(r.sessions), nil
}
