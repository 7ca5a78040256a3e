package taskpool

// Stats is a point-in-time snapshot of pool activity. Counters are lifetime
// totals; QueuedTasks is the instantaneous queue depth. Like RunningNames,
// a snapshot may be stale the instant it returns.
type Stats struct {
	Workers     int
	QueuedTasks int
	Submitted   int64
	Executed    int64
	Rejected    int64
	Discarded   int64
	Panicked    int64
}

// Stats returns a snapshot of the pool's counters and queue depth.
// Returns the zero value on a nil pool.
func (p *Pool) Stats() Stats {
	if p == nil {
		return Stats{}
	}
	p.mu.Lock()
	depth := p.queue.size
	workers := len(p.running)
	p.mu.Unlock()

	return Stats{
		Workers:     workers,
		QueuedTasks: depth,
		Submitted:   p.submitted.Load(),
		Executed:    p.executed.Load(),
		Rejected:    p.rejected.Load(),
		Discarded:   p.discarded.Load(),
		Panicked:    p.panicked.Load(),
	}
}
