package sink

// Noop discards all events. Useful as the default sink.
// All methods are safe for concurrent use and perform no work.
type Noop struct{}

// NewNoop constructs a Sink that discards all events.
func NewNoop() Noop { return Noop{} }

func (Noop) Emit(_ Level, _, _ string) {}
