package taskpool

// taskQueue is an unbounded singly-linked FIFO of tasks. It has no locking
// of its own: every access happens while holding the owning Pool's mutex.
//
// Invariant: size equals the number of linked nodes, and
// size == 0 <=> head == tail == nil.
type taskQueue struct {
	head *taskNode
	tail *taskNode
	size int
}

type taskNode struct {
	task Task
	next *taskNode
}

// enqueue appends t at the tail. O(1).
func (q *taskQueue) enqueue(t Task) {
	n := &taskNode{task: t}
	if q.tail == nil {
		q.head = n
		q.tail = n
	} else {
		q.tail.next = n
		q.tail = n
	}
	q.size++
}

// dequeue pops the head task. O(1). The second return is false only on an
// empty queue; callers are expected to have checked size under the lock.
func (q *taskQueue) dequeue() (Task, bool) {
	if q.head == nil {
		return Task{}, false
	}
	n := q.head
	q.head = n.next
	if q.head == nil {
		q.tail = nil
	}
	q.size--
	n.next = nil
	return n.task, true
}

// drain unlinks every remaining task without executing it and resets the
// queue to empty. Used only during teardown, after all workers have stopped.
// The returned slice lets the caller count the discards and hand them to an
// optional discard callback; the tasks' Arg payloads are otherwise orphaned.
func (q *taskQueue) drain() []Task {
	if q.size == 0 {
		return nil
	}
	out := make([]Task, 0, q.size)
	for n := q.head; n != nil; n = n.next {
		out = append(out, n.task)
	}
	q.head = nil
	q.tail = nil
	q.size = 0
	return out
}
