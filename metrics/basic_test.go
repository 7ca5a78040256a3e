package metrics

import (
	"sync"
	"testing"
)

func TestBasicProvider_InstrumentsReusedByName(t *testing.T) {
	p := NewBasicProvider()

	c1 := p.Counter("tasks_submitted_total")
	c2 := p.Counter("tasks_submitted_total")
	if c1 != c2 {
		t.Fatalf("same-name counters are distinct instruments")
	}

	u1 := p.UpDownCounter("queue_depth")
	u2 := p.UpDownCounter("queue_depth")
	if u1 != u2 {
		t.Fatalf("same-name up/down counters are distinct instruments")
	}

	h1 := p.Histogram("task_duration_seconds")
	h2 := p.Histogram("task_duration_seconds")
	if h1 != h2 {
		t.Fatalf("same-name histograms are distinct instruments")
	}
}

func TestBasicCounter_ConcurrentAdds(t *testing.T) {
	p := NewBasicProvider()
	c := p.Counter("hits")

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Add(1)
			}
		}()
	}
	wg.Wait()

	if got := c.(*BasicCounter).Snapshot(); got != 1000 {
		t.Fatalf("counter = %d; want 1000", got)
	}
}

func TestBasicUpDownCounter_MovesBothWays(t *testing.T) {
	p := NewBasicProvider()
	u := p.UpDownCounter("depth")
	u.Add(5)
	u.Add(-2)
	if got := u.(*BasicUpDownCounter).Snapshot(); got != 3 {
		t.Fatalf("up/down counter = %d; want 3", got)
	}
}

func TestBasicHistogram_Snapshot(t *testing.T) {
	p := NewBasicProvider()
	h := p.Histogram("durations")

	for _, v := range []float64{0.5, 1.5, 1.0} {
		h.Record(v)
	}

	s := h.(*BasicHistogram).Snapshot()
	if s.Count != 3 {
		t.Fatalf("Count = %d; want 3", s.Count)
	}
	if s.Sum != 3.0 {
		t.Fatalf("Sum = %v; want 3.0", s.Sum)
	}
	if s.Min != 0.5 || s.Max != 1.5 {
		t.Fatalf("Min/Max = %v/%v; want 0.5/1.5", s.Min, s.Max)
	}
	if s.Mean != 1.0 {
		t.Fatalf("Mean = %v; want 1.0", s.Mean)
	}
}

func TestBasicHistogram_EmptySnapshot(t *testing.T) {
	var h BasicHistogram
	s := h.Snapshot()
	if s.Count != 0 || s.Sum != 0 || s.Mean != 0 {
		t.Fatalf("empty snapshot = %+v; want zeros", s)
	}
}
