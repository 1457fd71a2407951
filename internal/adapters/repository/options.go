package repository

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithCapacity bounds the number of concurrent sessions. Zero or negative
// means unbounded.
func WithCapacity(n int) Option {
	return func(s *MemStore) {
		s.capacity = n
	}
}
