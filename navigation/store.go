package navigation

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CookieName identifies the visitor whose history a request belongs to.
const CookieName = "explorador_nav"

// Store holds one History per visitor. At most size visitors are kept; the
// least recently seen is dropped first, and a visitor idle for ttl is
// forgotten.
type Store struct {
	mu        sync.Mutex
	histories *expirable.LRU[string, History]
	factory   func() History
}

// NewStore returns a store that creates a Stack for each new visitor.
func NewStore(size int, ttl time.Duration) *Store {
	return &Store{
		histories: expirable.NewLRU[string, History](size, nil, ttl),
		factory:   func() History { return NewStack() },
	}
}

// History returns the history of visitor id, creating it on first use. Every
// call renews the visitor's ttl.
func (s *Store) History(id string) History {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.histories.Get(id)
	if !ok {
		h = s.factory()
	}
	s.histories.Add(id, h)
	return h
}

// Len returns the number of visitors currently tracked.
func (s *Store) Len() int {
	return s.histories.Len()
}

// VisitorID returns the visitor id carried by r, issuing a new one through a
// cookie on w when r has none.
func VisitorID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(CookieName); err == nil {
		if _, err := uuid.Parse(c.Value); err == nil {
			return c.Value
		}
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
