// Package sink defines the minimal event surface the pool uses for
// diagnostic tracing. A Sink receives leveled, per-component messages;
// implementations must be safe for concurrent use and must never block
// pool progress on their own correctness.
//
// Keep this interface minimal and stable. Rotation, formatting, and
// callback dispatch belong to whatever logging facility an application
// adapts behind it, not here.
package sink

// Level orders diagnostic events by severity. Lower values are more severe.
type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

// String returns the conventional upper-case label for the level.
func (l Level) String() string {
	switch l {
	case LevelError:
		return "ERROR"
	case LevelWarn:
		return "WARN"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	case LevelTrace:
		return "TRACE"
	default:
		return "UNKNOWN"
	}
}

// Sink consumes diagnostic events. Emit is a write-only side channel:
// callers never read anything back and ignore failures.
type Sink interface {
	Emit(level Level, component, message string)
}

// Func adapts a plain function to the Sink interface.
type Func func(level Level, component, message string)

// Emit calls f.
func (f Func) Emit(level Level, component, message string) { f(level, component, message) }
