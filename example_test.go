package taskpool_test

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/ygrebnov/taskpool"
)

// ExampleNew shows the basic submit-and-close cycle. Close drains the queue
// by execution, so every accepted task has run by the time it returns.
func ExampleNew() {
	p, err := taskpool.New(2)
	if err != nil {
		fmt.Println(err)
		return
	}

	var counter atomic.Int64
	for i := 0; i < 5; i++ {
		_ = p.Submit(func(any) { counter.Add(1) }, nil, "increment")
	}

	_ = p.Close()
	fmt.Println(counter.Load())
	// Output: 5
}

// ExamplePool_RunningNames shows the introspection surface: each worker
// reports the name of the task it is executing, or "[idle]".
func ExamplePool_RunningNames() {
	p, _ := taskpool.New(3)
	defer p.Close()

	fmt.Println(strings.Join(p.RunningNames(), " "))
	// Output: [idle] [idle] [idle]
}

// ExamplePool_Stats shows the lifetime counters snapshot.
func ExamplePool_Stats() {
	p, _ := taskpool.New(1)
	for i := 0; i < 3; i++ {
		_ = p.Submit(func(any) {}, nil, "job")
	}
	_ = p.Close()

	st := p.Stats()
	fmt.Println(st.Submitted, st.Executed, st.Discarded)
	// Output: 3 3 0
}
