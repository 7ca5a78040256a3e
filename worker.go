package taskpool

import (
	"fmt"
	"time"

	"github.com/ygrebnov/taskpool/sink"
)

// worker is the fetch-execute-report loop run by each worker goroutine.
// id is the worker's index into the running-names table.
//
// The loop holds the pool lock everywhere except while the task body runs:
// bodies are arbitrary, may take unbounded time, and may re-enter Submit, so
// executing them under the lock would serialize the pool and deadlock
// re-entrant producers.
func (p *Pool) worker(id int) {
	defer p.wg.Done()
	p.cfg.Sink.Emit(sink.LevelDebug, componentWorker,
		fmt.Sprintf("worker #%d started", id))

	for {
		p.mu.Lock()
		for p.queue.size == 0 && !p.closed {
			p.cond.Wait()
		}

		// Terminal transition. By default a closed pool keeps dequeuing
		// until the queue is empty (Submit cannot grow it anymore); with
		// DiscardOnClose workers stop dispatching immediately and Close
		// discards whatever is still queued.
		if p.closed && (p.cfg.DiscardOnClose || p.queue.size == 0) {
			p.mu.Unlock()
			p.cfg.Sink.Emit(sink.LevelDebug, componentWorker,
				fmt.Sprintf("worker #%d exiting", id))
			return
		}

		t, ok := p.queue.dequeue()
		if !ok {
			// unreachable: the wait condition guarantees size > 0 here
			p.mu.Unlock()
			continue
		}
		p.running[id] = t.Name
		p.mu.Unlock()

		p.mQueueDepth.Add(-1)
		p.execute(id, t)

		p.mu.Lock()
		p.running[id] = IdleName
		p.mu.Unlock()
	}
}

// execute runs one task body outside the pool lock, containing panics and
// recording duration and outcome.
func (p *Pool) execute(id int, t Task) {
	p.cfg.Sink.Emit(sink.LevelTrace, componentWorker,
		fmt.Sprintf("worker #%d running task %q", id, t.Name))
	start := time.Now()

	defer func() {
		p.mDuration.Record(time.Since(start).Seconds())
		if r := recover(); r != nil {
			p.panicked.Add(1)
			p.mPanicked.Add(1)
			p.cfg.Sink.Emit(sink.LevelError, componentWorker,
				fmt.Sprintf("worker #%d: task %q panicked: %v", id, t.Name, r))
			return
		}
		p.executed.Add(1)
		p.mExecuted.Add(1)
		p.cfg.Sink.Emit(sink.LevelTrace, componentWorker,
			fmt.Sprintf("worker #%d finished task %q", id, t.Name))
	}()

	t.Action(t.Arg)
}
