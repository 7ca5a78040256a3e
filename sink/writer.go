package sink

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Writer is a leveled text Sink writing one line per event to an io.Writer.
// Events above the configured maximum level are dropped. Writer serializes
// writes with a mutex so interleaved events stay line-atomic; it is intended
// for consoles and test buffers, not high-volume production logging.
type Writer struct {
	mu    sync.Mutex
	out   io.Writer
	max   Level
	clock func() time.Time
}

// NewWriter constructs a Writer emitting events at or below max to out.
func NewWriter(out io.Writer, max Level) *Writer {
	return &Writer{out: out, max: max, clock: time.Now}
}

// Emit writes "<ts> <LEVEL> [component] message\n". Write errors are ignored:
// the sink is a side channel and must not surface failures to the emitter.
func (w *Writer) Emit(level Level, component, message string) {
	if level > w.max {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	_, _ = fmt.Fprintf(
		w.out,
		"%s %s [%s] %s\n",
		w.clock().Format("2006-01-02 15:04:05.000"),
		level,
		component,
		message,
	)
}
