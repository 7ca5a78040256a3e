package tests

import (
	"testing"

	"go.uber.org/goleak"
)

// A pool must not leak worker goroutines once Close returns.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
