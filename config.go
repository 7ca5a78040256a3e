package taskpool

import (
	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/taskpool/metrics"
	"github.com/ygrebnov/taskpool/sink"
)

// config holds Pool configuration.
type config struct {
	// Sink receives diagnostic events for queue/worker state transitions.
	// Pure side channel: pool correctness never depends on it.
	// Default: sink.Noop.
	Sink sink.Sink

	// Metrics provides the instruments the pool records into.
	// Default: metrics.NoopProvider.
	Metrics metrics.Provider

	// DiscardOnClose makes workers stop dequeuing as soon as Close begins:
	// tasks still queued at that point never run and are discarded after the
	// workers have stopped. The default is to drain the queue by execution,
	// so Close blocks until every already-submitted task has run.
	// Default: false (drain by execution).
	DiscardOnClose bool

	// OnDiscard, when set, is invoked once per task discarded at Close,
	// after all workers have stopped. It gives callers a chance to reclaim
	// Arg payloads that would otherwise be orphaned. Only meaningful
	// together with DiscardOnClose.
	// Default: nil.
	OnDiscard func(Task)

	// DefaultTaskName replaces an empty name at Submit time.
	// Default: "unnamed_task".
	DefaultTaskName string
}

// defaultConfig centralizes default values for config.
func defaultConfig() config {
	return config{
		Sink:            sink.NewNoop(),
		Metrics:         metrics.NewNoopProvider(),
		DiscardOnClose:  false,
		OnDiscard:       nil,
		DefaultTaskName: DefaultTaskName,
	}
}

// validateConfig performs lightweight invariants checks after options ran.
func validateConfig(cfg *config) error {
	if cfg.Sink == nil {
		return errorc.With(ErrInvalidConfig, errorc.String("", "sink must not be nil"))
	}
	if cfg.Metrics == nil {
		return errorc.With(ErrInvalidConfig, errorc.String("", "metrics provider must not be nil"))
	}
	if cfg.DefaultTaskName == "" || len(cfg.DefaultTaskName) > MaxNameLen {
		return errorc.With(ErrInvalidConfig,
			errorc.String("", "default task name must be non-empty and at most MaxNameLen bytes"))
	}
	return nil
}

// Option configures a Pool. Use New(n, opts...) to construct a Pool via options.
// An Option returns an error on invalid input instead of panicking.
type Option func(*config) error

// WithSink routes the pool's diagnostic events to s.
func WithSink(s sink.Sink) Option {
	return func(cfg *config) error {
		if s == nil {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithSink requires a non-nil sink"))
		}
		cfg.Sink = s
		return nil
	}
}

// WithMetrics records the pool's counters and task durations through p.
func WithMetrics(p metrics.Provider) Option {
	return func(cfg *config) error {
		if p == nil {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithMetrics requires a non-nil provider"))
		}
		cfg.Metrics = p
		return nil
	}
}

// WithDiscardOnClose makes Close discard, rather than execute, tasks that
// were still queued when it was called. Discarded tasks never run; their Arg
// payloads are orphaned unless WithDiscardFunc reclaims them.
func WithDiscardOnClose() Option {
	return func(cfg *config) error { cfg.DiscardOnClose = true; return nil }
}

// WithDiscardFunc registers fn to be called once per task discarded at
// Close, after all workers have stopped. fn runs on the goroutine calling
// Close and must not submit to the pool. Only meaningful together with
// WithDiscardOnClose.
func WithDiscardFunc(fn func(Task)) Option {
	return func(cfg *config) error {
		if fn == nil {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithDiscardFunc requires a non-nil callback"))
		}
		cfg.OnDiscard = fn
		return nil
	}
}

// WithDefaultTaskName overrides the label substituted for empty task names.
func WithDefaultTaskName(name string) Option {
	return func(cfg *config) error {
		if name == "" || len(name) > MaxNameLen {
			return errorc.With(ErrInvalidConfig,
				errorc.String("", "WithDefaultTaskName requires a non-empty name of at most MaxNameLen bytes"))
		}
		cfg.DefaultTaskName = name
		return nil
	}
}
