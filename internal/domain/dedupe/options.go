package dedupe

// Option applies a configuration option to a Set.
type Option func(*Set)

// WithCapacity pre-sizes the Set for n keys.
func WithCapacity(n int) Option {
	return func(s *Set) {
		if n > 0 {
			s.seen = make(map[string]int, n)
			s.order = make([]string, 0, n)
		}
	}
}
