package sorter

import (
	"time"

	"go.uber.org/zap"

	"github.com/ytget/sort-visualizer/internal/model"
)

// Stats summarizes one sort pass
type Stats struct {
	Swaps       int
	Comparisons int
	Partitions  int
	Duration    time.Duration
}

// workRange is an inclusive index pair awaiting partitioning
type workRange struct {
	low, high int
}

// Sorter sorts buffers in place with an iterative quicksort
type Sorter struct {
	observer Observer
	recorder Recorder
	pace     time.Duration
	log      *zap.Logger
}

// New creates a sorter
func New(opts ...Option) *Sorter {
	s := &Sorter{log: zap.NewNop()}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Sort reorders buf in place into the given direction and returns the pass
// statistics. Empty and single-element buffers are left untouched.
func (s *Sorter) Sort(buf Buffer, dir model.Direction) Stats {
	var (
		st    Stats
		start = time.Now()
	)

	high := buf.Len() - 1
	if high > 0 {
		stack := []workRange{{low: 0, high: high}}
		for len(stack) > 0 {
			r := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			p := s.partition(buf, dir, r.low, r.high, &st)

			if p-1 > r.low {
				stack = append(stack, workRange{low: r.low, high: p - 1})
			}
			if p+1 < r.high {
				stack = append(stack, workRange{low: p + 1, high: r.high})
			}
		}
	}

	st.Duration = time.Since(start)
	s.log.Debug("sort finished",
		zap.Stringer("direction", dir),
		zap.Int("length", buf.Len()),
		zap.Int("swaps", st.Swaps),
		zap.Int("comparisons", st.Comparisons),
		zap.Int("partitions", st.Partitions),
		zap.Duration("took", st.Duration))
	if s.recorder != nil {
		s.recorder.ObserveSort(dir.String(), st)
	}
	return st
}

// partition moves the middle element out to high, gathers every element that
// belongs before it at the front and drops the pivot right after them.
// It returns the final pivot index.
func (s *Sorter) partition(buf Buffer, dir model.Direction, low, high int, st *Stats) int {
	st.Partitions++

	mid := low + (high-low)/2
	pivot := buf.Value(mid)

	s.swap(buf, mid, high, low, high, pivot, st)

	i := low
	for j := low; j < high; j++ {
		st.Comparisons++
		if dir.Before(buf.Value(j), pivot) {
			s.swap(buf, i, j, low, high, pivot, st)
			i++
		}
	}

	s.swap(buf, i, high, low, high, pivot, st)
	return i
}

// swap exchanges two positions and reports it, self-swaps included
func (s *Sorter) swap(buf Buffer, i, j, low, high, pivot int, st *Stats) {
	buf.Swap(i, j)
	st.Swaps++

	if s.observer != nil {
		s.observer(SwapEvent{I: i, J: j, Low: low, High: high, Pivot: pivot})
	}
	if s.pace > 0 {
		time.Sleep(s.pace)
	}
}
