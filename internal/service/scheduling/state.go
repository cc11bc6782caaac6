// internal/service/scheduling/state.go

package scheduling

import (
	"sync"
	"time"

	"clipforge/internal/domain/content"
	"clipforge/internal/domain/trend"
)

// historyLimit bounds the artifact ring buffer.
const historyLimit = 10

// State is the scheduler's owned in-memory state: the latest trend
// discovery and a ring of recently generated artifacts. A single mutex
// covers both so manual and scheduled triggers cannot race on it.
type State struct {
	mu        sync.Mutex
	trends    []trend.Record
	trendsAt  time.Time
	artifacts []*content.Artifact
}

// NewState creates empty scheduler state.
func NewState() *State {
	return &State{}
}

// SetTrends replaces the cached discovery result.
func (s *State) SetTrends(records []trend.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trends = records
	s.trendsAt = time.Now().UTC()
}

// Trends returns the cached discovery result and when it was taken.
func (s *State) Trends() ([]trend.Record, time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]trend.Record, len(s.trends))
	copy(out, s.trends)
	return out, s.trendsAt
}

// AddArtifact appends to the history ring, evicting the oldest entry once
// the ring holds historyLimit artifacts.
func (s *State) AddArtifact(a *content.Artifact) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.artifacts = append(s.artifacts, a)
	if len(s.artifacts) > historyLimit {
		s.artifacts = s.artifacts[len(s.artifacts)-historyLimit:]
	}
}

// History returns the retained artifacts, oldest first.
func (s *State) History() []*content.Artifact {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*content.Artifact, len(s.artifacts))
	copy(out, s.artifacts)
	return out
}

// Latest returns the most recently generated artifact, or nil.
func (s *State) Latest() *content.Artifact {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.artifacts) == 0 {
		return nil
	}
	return s.artifacts[len(s.artifacts)-1]
}
