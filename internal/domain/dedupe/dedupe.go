// Package dedupe tracks unique keys for counting and membership checks.
package dedupe

// Set records keys in first-seen order.
//
// A Set has a single writer per run and is not safe for concurrent use.
type Set struct {
	seen  map[string]int // key -> position in order
	order []string
}

// New creates an empty Set with configuration options.
func New(opts ...Option) *Set {
	s := &Set{}

	for _, opt := range opts {
		opt(s)
	}

	if s.seen == nil {
		s.seen = make(map[string]int)
	}
	return s
}

// SeenAndRecord checks if key was seen and records it if not.
// Returns true if key was already seen, false if it was newly recorded.
func (s *Set) SeenAndRecord(key string) bool {
	if _, ok := s.seen[key]; ok {
		return true
	}
	s.seen[key] = len(s.order)
	s.order = append(s.order, key)
	return false
}

// Contains reports whether key was recorded.
func (s *Set) Contains(key string) bool {
	_, ok := s.seen[key]
	return ok
}

// Index returns the first-seen position of key, or -1.
func (s *Set) Index(key string) int {
	if i, ok := s.seen[key]; ok {
		return i
	}
	return -1
}

// Merge records every key of other, keeping other's order for new keys.
func (s *Set) Merge(other *Set) {
	if other == nil {
		return
	}
	for _, k := range other.order {
		s.SeenAndRecord(k)
	}
}

// Keys returns the recorded keys in first-seen order. The slice is a copy.
func (s *Set) Keys() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Size returns the number of recorded keys.
func (s *Set) Size() int {
	return len(s.order)
}
