package usecase

import (
	"sync"

	"github.com/puzpuzpuz/xsync/v3"

	"oficina_api/internal/domain/entities"
)

// draftSession wraps an active draft with its own mutex. A draft is
// owned by the single form that opened it, but the HTTP surface can
// deliver requests for the same draft concurrently, so mutations are
// serialized per session.
type draftSession struct {
	sync.Mutex
	draft *entities.OrderDraft
}

// DraftStore keeps the in-memory order drafts currently being composed,
// keyed by draft id. Drafts are never persisted; cancelling simply
// drops the session.
type DraftStore struct {
	sessions *xsync.MapOf[string, *draftSession]
}

func NewDraftStore() *DraftStore {
	return &DraftStore{sessions: xsync.NewMapOf[string, *draftSession]()}
}

func (s *DraftStore) Put(draft *entities.OrderDraft) {
	s.sessions.Store(draft.ID, &draftSession{draft: draft})
}

// With runs fn with the session lock held. It returns false when the
// draft does not exist (or was already submitted and dropped).
func (s *DraftStore) With(id string, fn func(d *entities.OrderDraft) error) (bool, error) {
	session, ok := s.sessions.Load(id)
	if !ok {
		return false, nil
	}
	session.Lock()
	defer session.Unlock()
	return true, fn(session.draft)
}

func (s *DraftStore) Delete(id string) bool {
	_, ok := s.sessions.LoadAndDelete(id)
	return ok
}
