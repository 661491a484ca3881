package cache

// ScopedKeyer wraps a Keyer with a prefix, isolating cache keys between
// independent callers (e.g. separate benchmark runs) sharing one backend.
//
// Example usage:
//
//	runKeyer := NewScopedKeyer(NewDefaultKeyer(), "run:7f3a:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// OrderingKey generates a prefixed key for an ordering result.
func (k *ScopedKeyer) OrderingKey(graphHash string, opts OrderingKeyOpts) string {
	return k.prefix + k.inner.OrderingKey(graphHash, opts)
}
