package krona

// LazyValue defers computation of a configuration value until the point
// of retrieval. The producer runs fresh on every Resolve call; results
// are not cached. Get resolves a LazyValue found at the terminal path
// position; Validate never resolves one.
type LazyValue struct {
	produce func() any
}

// Lazy wraps a zero-argument producer as a deferred configuration value.
func Lazy(producer func() any) *LazyValue {
	return &LazyValue{produce: producer}
}

// Resolve runs the producer and returns its result. Each call re-runs
// the producer; callers sharing a LazyValue across goroutines must
// ensure the producer itself tolerates concurrent re-entry.
func (l *LazyValue) Resolve() any {
	if l == nil || l.produce == nil {
		return nil
	}

	return l.produce()
}
