package taskpool

// Action is the executable body of a task. The pool never inspects arg and
// never releases it: ownership of arg passes to whichever code runs the
// action. If the action never runs (the task was still queued when Close
// discarded the queue), arg is orphaned unless a discard callback reclaims
// it (WithDiscardFunc).
type Action func(arg any)

// Task is one unit of work: an action, its opaque argument, and a bounded
// human-readable name used for introspection. A Task is copied by value into
// the queue at Submit time and is immutable afterwards.
type Task struct {
	Action Action
	Arg    any
	Name   string
}

const (
	// MaxNameLen bounds the visible length of a task name in bytes.
	// Longer names are truncated at Submit time.
	MaxNameLen = 63

	// IdleName is the sentinel reported for a worker that is not
	// executing a task.
	IdleName = "[idle]"

	// DefaultTaskName replaces an empty task name at Submit time unless
	// overridden with WithDefaultTaskName.
	DefaultTaskName = "unnamed_task"
)

// normalizeName applies the fallback for empty names and the byte-length
// bound. Truncation is byte-based, so a multi-byte rune crossing the bound
// may be cut; names are diagnostic labels, not data.
func normalizeName(name, fallback string) string {
	if name == "" {
		name = fallback
	}
	if len(name) > MaxNameLen {
		name = name[:MaxNameLen]
	}
	return name
}
