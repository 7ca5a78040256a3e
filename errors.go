package taskpool

import "errors"

const Namespace = "taskpool"

var (
	ErrNilPool = errors.New(
		Namespace + ": operation on a nil pool handle",
	)
	ErrNilAction = errors.New(
		Namespace + ": cannot submit a task with a nil action",
	)
	ErrPoolClosed = errors.New(
		Namespace + ": cannot submit a task to a closed pool",
	)
	ErrInvalidWorkerCount = errors.New(
		Namespace + ": worker count must be positive",
	)
	ErrInvalidConfig = errors.New(Namespace + ": invalid configuration")
)
