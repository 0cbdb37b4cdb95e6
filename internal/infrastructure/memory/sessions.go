package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/monsterwith/monstermedia/internal/core/domain"
)

// SessionStore keeps sessions in process memory. No expiry: test sessions
// live as long as the store.
type SessionStore struct {
	s *Store
}

func (st *SessionStore) Create(_ context.Context, userID int64) (string, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()

	token := uuid.NewString()
	st.s.sessions[token] = userID
	return token, nil
}

func (st *SessionStore) Resolve(_ context.Context, token string) (int64, error) {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()

	userID, ok := st.s.sessions[token]
	if !ok {
		return 0, domain.ErrSessionNotFound
	}
	return userID, nil
}

func (st *SessionStore) Destroy(_ context.Context, token string) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()

	delete(st.s.sessions, token)
	return nil
}
