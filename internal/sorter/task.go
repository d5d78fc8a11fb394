package sorter

import (
	"github.com/ytget/sort-visualizer/internal/model"
)

// Task is a sort running on its own goroutine. It cannot be cancelled and
// always runs to completion.
type Task struct {
	done  chan struct{}
	stats Stats
}

// Start sorts buf on a new goroutine and returns immediately. If then is not
// nil it runs on that goroutine after the sort and before Done is closed.
func (s *Sorter) Start(buf Buffer, dir model.Direction, then func(Stats)) *Task {
	t := &Task{done: make(chan struct{})}
	go func() {
		defer close(t.done)
		t.stats = s.Sort(buf, dir)
		if then != nil {
			then(t.stats)
		}
	}()
	return t
}

// Done is closed once the sort has finished
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the sort has finished and returns its statistics
func (t *Task) Wait() Stats {
	<-t.done
	return t.stats
}
