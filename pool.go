package taskpool

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/taskpool/metrics"
	"github.com/ygrebnov/taskpool/sink"
)

// Pool executes named tasks on a fixed set of workers sharing one FIFO
// queue. Pool is a concrete struct; all methods are safe for concurrent use
// by any number of producer goroutines. Construct via New; the zero value is
// not usable.
type Pool struct {
	// noCopy prevents accidental copying of the pool.
	//go:nocopy
	nc noCopy

	cfg config

	// mu is the single monitor lock guarding queue, closed, and running.
	// cond is paired with mu; workers wait on it for work or shutdown.
	mu   sync.Mutex
	cond *sync.Cond

	queue  taskQueue
	closed bool

	// running[i] holds the name of the task worker i is executing, or
	// IdleName. Read and written only under mu, so snapshots are never torn.
	running []string

	// wg joins all worker goroutines during Close.
	wg sync.WaitGroup

	// lifetime counters, exposed via Stats
	submitted atomic.Int64
	executed  atomic.Int64
	rejected  atomic.Int64
	discarded atomic.Int64
	panicked  atomic.Int64

	// metrics instruments, resolved once at construction
	mSubmitted  metrics.Counter
	mExecuted   metrics.Counter
	mRejected   metrics.Counter
	mDiscarded  metrics.Counter
	mPanicked   metrics.Counter
	mQueueDepth metrics.UpDownCounter
	mDuration   metrics.Histogram
}

// noCopy is a vet-recognized marker to discourage copying types with this
// field embedded. It works with the "-copylocks" analyzer via the presence
// of Lock/Unlock methods.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

const (
	componentPool   = "pool"
	componentWorker = "worker"
)

// New creates a pool with exactly workers long-lived workers and returns it
// ready to accept submissions. It rejects a non-positive worker count and
// any invalid option; on error no goroutine is started and no partial pool
// escapes.
func New(workers int, opts ...Option) (*Pool, error) {
	if workers <= 0 {
		return nil, errorc.With(ErrInvalidWorkerCount,
			errorc.String("", fmt.Sprintf("requested %d", workers)))
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	p := &Pool{
		cfg:     cfg,
		running: make([]string, workers),
	}
	p.cond = sync.NewCond(&p.mu)
	for i := range p.running {
		p.running[i] = IdleName
	}

	p.mSubmitted = cfg.Metrics.Counter("tasks_submitted_total",
		metrics.WithDescription("Tasks accepted by Submit."), metrics.WithUnit("1"))
	p.mExecuted = cfg.Metrics.Counter("tasks_executed_total",
		metrics.WithDescription("Tasks whose action ran to completion."), metrics.WithUnit("1"))
	p.mRejected = cfg.Metrics.Counter("tasks_rejected_total",
		metrics.WithDescription("Submissions rejected because the pool was closed."), metrics.WithUnit("1"))
	p.mDiscarded = cfg.Metrics.Counter("tasks_discarded_total",
		metrics.WithDescription("Queued tasks discarded unexecuted at Close."), metrics.WithUnit("1"))
	p.mPanicked = cfg.Metrics.Counter("tasks_panicked_total",
		metrics.WithDescription("Task actions that panicked."), metrics.WithUnit("1"))
	p.mQueueDepth = cfg.Metrics.UpDownCounter("queue_depth",
		metrics.WithDescription("Tasks currently queued, not yet dequeued."), metrics.WithUnit("1"))
	p.mDuration = cfg.Metrics.Histogram("task_duration_seconds",
		metrics.WithDescription("Wall-clock duration of task actions."), metrics.WithUnit("seconds"))

	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}

	p.cfg.Sink.Emit(sink.LevelInfo, componentPool,
		fmt.Sprintf("pool created with %d workers", workers))
	return p, nil
}

// Submit enqueues action for execution under the given name and wakes one
// waiting worker. It never blocks on queue capacity (the queue is
// unbounded). An empty name is replaced with the configured default; a name
// longer than MaxNameLen bytes is truncated.
//
// On failure (nil pool, nil action, pool closed) the caller retains
// ownership of arg: the pool has not taken it.
func (p *Pool) Submit(action Action, arg any, name string) error {
	if p == nil {
		return ErrNilPool
	}
	if action == nil {
		return ErrNilAction
	}

	t := Task{
		Action: action,
		Arg:    arg,
		Name:   normalizeName(name, p.cfg.DefaultTaskName),
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		p.rejected.Add(1)
		p.mRejected.Add(1)
		p.cfg.Sink.Emit(sink.LevelWarn, componentPool,
			fmt.Sprintf("submit of task %q rejected: pool is closed", t.Name))
		return ErrPoolClosed
	}
	p.queue.enqueue(t)
	depth := p.queue.size
	p.cond.Signal()
	p.mu.Unlock()

	p.submitted.Add(1)
	p.mSubmitted.Add(1)
	p.mQueueDepth.Add(1)
	p.cfg.Sink.Emit(sink.LevelDebug, componentPool,
		fmt.Sprintf("task %q enqueued, queue depth %d", t.Name, depth))
	return nil
}

// RunningNames returns an independent snapshot of the name each worker is
// currently executing; parked workers report IdleName. The snapshot may be
// stale the instant it returns: it is a diagnostic, not a synchronization
// primitive. Returns nil on a nil pool.
func (p *Pool) RunningNames() []string {
	if p == nil {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	names := make([]string, len(p.running))
	copy(names, p.running)
	return names
}

// Close shuts the pool down and releases its workers. It is idempotent:
// once shutdown has begun, subsequent calls return nil immediately.
//
// The first call stops admission (Submit fails with ErrPoolClosed), wakes
// every worker, and blocks until the queue has emptied and all in-flight
// actions have returned. With WithDiscardOnClose workers stop dequeuing
// instead: tasks still queued when Close began never run and are handed to
// the discard callback if one is configured. There is no timeout either
// way: a hung action hangs Close.
func (p *Pool) Close() error {
	if p == nil {
		return ErrNilPool
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	p.cond.Broadcast()
	p.mu.Unlock()

	p.cfg.Sink.Emit(sink.LevelInfo, componentPool, "pool closing, waiting for workers")
	p.wg.Wait()

	// Workers are gone; the lock still fences concurrent RunningNames/Stats.
	p.mu.Lock()
	dropped := p.queue.drain()
	p.mu.Unlock()

	for _, t := range dropped {
		if p.cfg.OnDiscard != nil {
			p.cfg.OnDiscard(t)
		}
		p.cfg.Sink.Emit(sink.LevelWarn, componentPool,
			fmt.Sprintf("task %q discarded unexecuted at close", t.Name))
	}
	if n := len(dropped); n > 0 {
		p.discarded.Add(int64(n))
		p.mDiscarded.Add(int64(n))
		p.mQueueDepth.Add(int64(-n))
	}

	p.cfg.Sink.Emit(sink.LevelInfo, componentPool,
		fmt.Sprintf("pool closed, %d queued tasks discarded", len(dropped)))
	return nil
}
