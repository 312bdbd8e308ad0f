// Package session holds the in-memory state of one interactive session.
package session

import (
	"fmt"
	"strings"

	"github.com/fentz26/lorekeeper/internal/fold"
	"github.com/fentz26/lorekeeper/internal/world/npc"
)

// DefaultCapacity bounds the recent ring when no capacity is configured.
const DefaultCapacity = 100

// Session is owned by a single running session and mutated only by the
// command currently executing. It is not safe for concurrent use.
type Session struct {
	capacity   int
	recent     []*npc.Npc // oldest first
	alternates []*npc.Npc
	lastViewed *npc.Npc
}

// New returns an empty session. A non-positive capacity uses DefaultCapacity.
func New(capacity int) *Session {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Session{capacity: capacity}
}

// Push records n as the most recent entity, evicting the oldest when full.
func (s *Session) Push(n *npc.Npc) {
	s.recent = append(s.recent, n)
	if over := len(s.recent) - s.capacity; over > 0 {
		clear(s.recent[:over])
		s.recent = s.recent[over:]
	}
}

// Recent returns the recent entities newest first.
func (s *Session) Recent() []*npc.Npc {
	out := make([]*npc.Npc, len(s.recent))
	for i, n := range s.recent {
		out[len(out)-1-i] = n
	}
	return out
}

// FindRecent returns the newest recent entity whose name matches ignoring case.
func (s *Session) FindRecent(name string) *npc.Npc {
	for i := len(s.recent) - 1; i >= 0; i-- {
		if n := s.recent[i]; fold.Equal(n.Name.Get(), name) {
			return n
		}
	}
	return nil
}

// IsRecent reports whether n itself is still in the recent ring.
func (s *Session) IsRecent(n *npc.Npc) bool {
	for _, r := range s.recent {
		if r == n {
			return true
		}
	}
	return false
}

// Forget drops n from the recent ring. It is used once n is saved.
func (s *Session) Forget(n *npc.Npc) {
	for i, r := range s.recent {
		if r == n {
			s.recent = append(s.recent[:i], s.recent[i+1:]...)
			return
		}
	}
}

// SetAlternates replaces the entities addressable by numeric alias.
func (s *Session) SetAlternates(alts []*npc.Npc) {
	s.alternates = alts
}

// Alternates returns the entities currently addressable by numeric alias.
func (s *Session) Alternates() []*npc.Npc {
	return s.alternates
}

// Alternate returns the i-th alternate.
func (s *Session) Alternate(i int) (*npc.Npc, bool) {
	if i < 0 || i >= len(s.alternates) {
		return nil, false
	}
	return s.alternates[i], true
}

// SetLastViewed records the entity a bare "save" applies to.
func (s *Session) SetLastViewed(n *npc.Npc) {
	s.lastViewed = n
}

// LastViewed returns the entity last shown to the user, or nil.
func (s *Session) LastViewed() *npc.Npc {
	return s.lastViewed
}

// Debug dumps the session state.
func (s *Session) Debug() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Session\n**Recent:** %d of %d\\\n", len(s.recent), s.capacity)
	fmt.Fprintf(&b, "**Alternates:** %d\\\n", len(s.alternates))
	if s.lastViewed != nil {
		fmt.Fprintf(&b, "**Last viewed:** %s", s.lastViewed.DisplayName())
	} else {
		b.WriteString("**Last viewed:** none")
	}
	for _, n := range s.Recent() {
		fmt.Fprintf(&b, "\n\n```\n%+v\n```", *n)
	}
	return b.String()
}
