// Package taskpool provides a fixed-size pool of workers executing named
// units of work submitted from any number of producer goroutines, plus
// introspection into what each worker is currently running.
//
// Model
//   - New(n) starts exactly n long-lived workers sharing one unbounded FIFO
//     queue, coordinated by a single mutex and condition variable (classic
//     monitor pattern).
//   - Submit enqueues an Action with an opaque argument and a human-readable
//     name; a waiting worker is woken and executes the action outside the
//     pool lock. Dispatch is strict FIFO: tasks begin executing in submission
//     order, though with n > 1 their bodies interleave arbitrarily.
//   - RunningNames returns a point-in-time snapshot of the name each worker
//     is executing, or "[idle]" for parked workers. It is a diagnostic, not a
//     synchronization primitive.
//   - Close is idempotent: it stops admission, wakes all workers, and waits
//     for the queue to empty and all in-flight actions to finish. With
//     WithDiscardOnClose, workers stop dequeuing instead and still-queued
//     tasks are discarded unexecuted; their Arg payloads are orphaned unless
//     a discard callback reclaims them (WithDiscardFunc).
//
// Ordering and teardown guarantees are deliberately minimal: no
// work-stealing, no priorities, no per-task cancellation, no result futures.
// An action that was already dequeued always runs to completion before Close
// returns; there is no way to interrupt it and no timeout, so a hung action
// hangs Close.
//
// Observability
// Diagnostic events are emitted through an optional sink (see the sink
// subpackage) and counters/durations are recorded through an optional
// metrics provider (see the metrics subpackage). Both default to no-ops and
// never affect pool correctness.
package taskpool
