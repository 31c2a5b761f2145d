package idgen

import "sync"

// Sequence issues unique, strictly increasing int64 ids starting at 1.
// Ids are never reused within a process lifetime. Safe for concurrent use.
type Sequence struct {
	mu   sync.Mutex
	next int64
}

func NewSequence() *Sequence {
	return &Sequence{next: 1}
}

// Next returns the next id in the sequence.
func (s *Sequence) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.next
	s.next++
	return id
}
