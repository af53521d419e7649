package booking

import (
	"sync"
	"sync/atomic"
)

// Sequencer hands out increasing tokens. Only the holder of the latest token may apply its result.
type Sequencer struct {
	current atomic.Uint64
}

func (s *Sequencer) Next() uint64 {
	return s.current.Add(1)
}

func (s *Sequencer) IsCurrent(token uint64) bool {
	return s.current.Load() == token
}

// Sequencers keeps one Sequencer per key (draft id).
type Sequencers struct {
	mu   sync.Mutex
	byID map[string]*Sequencer
}

func NewSequencers() *Sequencers {
	return &Sequencers{byID: make(map[string]*Sequencer)}
}

func (s *Sequencers) For(key string) *Sequencer {
	s.mu.Lock()
	defer s.mu.Unlock()
	seq, ok := s.byID[key]
	if !ok {
		seq = &Sequencer{}
		s.byID[key] = seq
	}
	return seq
}

func (s *Sequencers) Forget(key string) {
	s.mu.Lock()
	delete(s.byID, key)
	s.mu.Unlock()
}

func (s *Sequencers) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byID)
}
