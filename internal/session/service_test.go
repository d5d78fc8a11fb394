package session

import (
	"errors"
	"slices"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/ytget/sort-visualizer/internal/generate"
	"github.com/ytget/sort-visualizer/internal/model"
	"github.com/ytget/sort-visualizer/internal/sorter"
)

// fixedGenerator returns the same sequence every time, truncated or padded to count
type fixedGenerator struct {
	seq   model.Sequence
	calls atomic.Int32
}

func (g *fixedGenerator) Generate(count int) model.Sequence {
	g.calls.Add(1)
	out := make(model.Sequence, count)
	for i := range out {
		out[i] = g.seq[i%len(g.seq)]
	}
	return out
}

type countingRecorder struct {
	mu        sync.Mutex
	sorts     int
	generated []int
	resets    int
}

func (r *countingRecorder) ObserveSort(string, sorter.Stats) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sorts++
}

func (r *countingRecorder) ObserveGenerated(length int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.generated = append(r.generated, length)
}

func (r *countingRecorder) ObserveReset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resets++
}

func newTestService(t *testing.T, seq ...int) (*Service, *fixedGenerator) {
	gen := &fixedGenerator{seq: seq}
	return NewService(gen, zaptest.NewLogger(t), nil), gen
}

func waitSorted(t *testing.T, running *sorter.Task) {
	t.Helper()
	select {
	case <-running.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("sort did not finish")
	}
}

func TestNewService(t *testing.T) {
	service := NewService(generate.NewSeeded(1), nil, nil)

	_, ok := service.Count()
	assert.False(t, ok)
	assert.Nil(t, service.Board())
	assert.Equal(t, model.Descending, service.Direction())
	assert.False(t, service.IsSorting())
	assert.Nil(t, service.LastTask())
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		input    string
		expected int
		err      error
	}{
		{"1", 1, nil},
		{"1000", 1000, nil},
		{" 42 ", 42, nil},
		{"abc", 0, ErrParse},
		{"", 0, ErrParse},
		{"12.5", 0, ErrParse},
		{"0", 0, ErrRange},
		{"-3", 0, ErrRange},
		{"1001", 0, ErrRange},
	}

	for _, test := range tests {
		count, err := ParseCount(test.input)
		if test.err != nil {
			assert.ErrorIs(t, err, test.err, "input %q", test.input)
			continue
		}
		require.NoError(t, err, "input %q", test.input)
		assert.Equal(t, test.expected, count)
	}
}

func TestSubmitCount_Invalid(t *testing.T) {
	service := NewService(generate.NewSeeded(1), zaptest.NewLogger(t), nil)

	_, err := service.SubmitCount("abc")
	require.ErrorIs(t, err, ErrParse)

	_, ok := service.Count()
	assert.False(t, ok, "count should remain unset")
	assert.Nil(t, service.Board())

	_, err = service.SubmitCount("1001")
	require.ErrorIs(t, err, ErrRange)
	_, ok = service.Count()
	assert.False(t, ok)
}

func TestSubmitCount_Valid(t *testing.T) {
	service := NewService(generate.NewSeeded(1), zaptest.NewLogger(t), nil)

	count, err := service.SubmitCount("1000")
	require.NoError(t, err)
	assert.Equal(t, 1000, count)

	board := service.Board()
	require.NotNil(t, board)
	require.Equal(t, 1000, board.Len())
	assert.True(t, board.Values().HasLow())

	// a later invalid input keeps the accepted count
	_, err = service.SubmitCount("x")
	require.Error(t, err)
	stored, ok := service.Count()
	assert.True(t, ok)
	assert.Equal(t, 1000, stored)
}

func TestRequestSort_NotPopulated(t *testing.T) {
	service, _ := newTestService(t, 1)

	_, _, err := service.RequestSort()
	assert.ErrorIs(t, err, ErrNotPopulated)
	assert.Equal(t, model.Descending, service.Direction())
}

func TestRequestSort_AlternatesDirection(t *testing.T) {
	service, _ := newTestService(t, 5, 2, 9, 1, 7)
	_, err := service.SubmitCount("5")
	require.NoError(t, err)

	task, running, err := service.RequestSort()
	require.NoError(t, err)
	assert.Equal(t, model.Ascending, task.Direction)
	assert.Equal(t, model.Ascending, service.Direction())
	waitSorted(t, running)
	assert.Equal(t, model.Sequence{1, 2, 5, 7, 9}, service.Board().Values())

	task, running, err = service.RequestSort()
	require.NoError(t, err)
	assert.Equal(t, model.Descending, task.Direction)
	waitSorted(t, running)
	assert.Equal(t, model.Sequence{9, 7, 5, 2, 1}, service.Board().Values())

	last := service.LastTask()
	require.NotNil(t, last)
	assert.Equal(t, model.SortStatusCompleted, last.Status)
	assert.Equal(t, running.Wait().Swaps, last.Swaps)
	assert.False(t, service.IsSorting())
}

func TestRequestSort_MirrorsSwapsOntoBoard(t *testing.T) {
	service, _ := newTestService(t, 500, 30, 999, 1, 77, 77, 640, 12)
	_, err := service.SubmitCount("8")
	require.NoError(t, err)
	before := service.Board().Values()

	var (
		mu     sync.Mutex
		shadow = slices.Clone(before)
		kinds  []EventKind
	)
	service.SetUpdateCallback(func(e Event) {
		mu.Lock()
		defer mu.Unlock()
		kinds = append(kinds, e.Kind)
		if e.Kind == EventSwapped {
			shadow[e.Swap.I], shadow[e.Swap.J] = shadow[e.Swap.J], shadow[e.Swap.I]
		}
	})

	_, running, err := service.RequestSort()
	require.NoError(t, err)
	st := running.Wait()

	expected := slices.Clone(before)
	slices.Sort(expected)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, expected, shadow)
	assert.Equal(t, expected, service.Board().Values())
	assert.Equal(t, EventSortStarted, kinds[0])
	assert.Equal(t, EventSortFinished, kinds[len(kinds)-1])
	assert.Equal(t, st.Swaps, len(kinds)-2)

	for _, h := range service.Board().Snapshot() {
		assert.Equal(t, model.HighlightNormal, h.Highlight)
	}
}

func TestRequestSort_RejectsRequestsWhileRunning(t *testing.T) {
	service, _ := newTestService(t, 5, 2, 9, 1, 7)
	service.SetPace(20 * time.Millisecond)
	_, err := service.SubmitCount("5")
	require.NoError(t, err)

	_, running, err := service.RequestSort()
	require.NoError(t, err)
	require.True(t, service.IsSorting())

	_, _, err = service.RequestSort()
	assert.ErrorIs(t, err, ErrSortInProgress)
	assert.ErrorIs(t, service.RequestReset(), ErrSortInProgress)
	assert.ErrorIs(t, service.SelectElement(3), ErrSortInProgress)
	_, err = service.SubmitCount("3")
	assert.ErrorIs(t, err, ErrSortInProgress)

	// the rejected sort request did not flip the direction
	assert.Equal(t, model.Ascending, service.Direction())

	waitSorted(t, running)
	assert.False(t, service.IsSorting())
	assert.Equal(t, model.Sequence{1, 2, 5, 7, 9}, service.Board().Values())
}

func TestRequestSort_Trivial(t *testing.T) {
	service, _ := newTestService(t, 7)
	_, err := service.SubmitCount("1")
	require.NoError(t, err)

	_, running, err := service.RequestSort()
	require.NoError(t, err)
	st := running.Wait()

	assert.Zero(t, st.Swaps)
	assert.Equal(t, model.Sequence{7}, service.Board().Values())
	assert.False(t, service.IsSorting())
}

func TestRequestReset(t *testing.T) {
	recorder := &countingRecorder{}
	gen := &fixedGenerator{seq: model.Sequence{5, 2, 9, 1, 7}}
	service := NewService(gen, zaptest.NewLogger(t), recorder)

	_, err := service.SubmitCount("5")
	require.NoError(t, err)
	_, running, err := service.RequestSort()
	require.NoError(t, err)
	waitSorted(t, running)
	require.Equal(t, model.Ascending, service.Direction())

	require.NoError(t, service.RequestReset())
	assert.Nil(t, service.Board())
	assert.Equal(t, model.Descending, service.Direction())
	count, ok := service.Count()
	assert.True(t, ok)
	assert.Equal(t, 5, count)

	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	assert.Equal(t, 1, recorder.sorts)
	assert.Equal(t, []int{5}, recorder.generated)
	assert.Equal(t, 1, recorder.resets)
}

func TestSelectElement(t *testing.T) {
	service, gen := newTestService(t, 500, 30, 31)

	assert.ErrorIs(t, service.SelectElement(0), ErrNotPopulated)

	_, err := service.SubmitCount("3")
	require.NoError(t, err)
	first := service.Board()
	require.Equal(t, int32(1), gen.calls.Load())

	err = service.SelectElement(0)
	assert.ErrorIs(t, err, ErrSelectionRange)
	err = service.SelectElement(2)
	assert.ErrorIs(t, err, ErrSelectionRange, "31 is above the threshold")
	assert.ErrorIs(t, service.SelectElement(3), ErrPosition)
	assert.ErrorIs(t, service.SelectElement(-1), ErrPosition)
	assert.Same(t, first, service.Board())

	require.NoError(t, service.SelectElement(1))
	assert.Equal(t, int32(2), gen.calls.Load())
	assert.NotSame(t, first, service.Board(), "board is replaced wholesale")
	assert.Equal(t, 3, service.Board().Len())
}

func TestSelectElement_KeepsDirection(t *testing.T) {
	service, _ := newTestService(t, 5, 2, 9, 1, 7)
	_, err := service.SubmitCount("5")
	require.NoError(t, err)

	_, running, err := service.RequestSort()
	require.NoError(t, err)
	waitSorted(t, running)

	// 1 sits at position 0 after an ascending sort
	require.NoError(t, service.SelectElement(0))
	assert.Equal(t, model.Ascending, service.Direction())
}

func TestSubmitCount_ResetsDirection(t *testing.T) {
	service, _ := newTestService(t, 5, 2, 9, 1, 7)
	_, err := service.SubmitCount("5")
	require.NoError(t, err)

	_, running, err := service.RequestSort()
	require.NoError(t, err)
	waitSorted(t, running)

	_, err = service.SubmitCount("4")
	require.NoError(t, err)
	assert.Equal(t, model.Descending, service.Direction())
}

func TestUpdateCallback(t *testing.T) {
	service, _ := newTestService(t, 3)

	var got []EventKind
	service.SetUpdateCallback(func(e Event) {
		got = append(got, e.Kind)
	})

	_, err := service.SubmitCount("2")
	require.NoError(t, err)
	require.NoError(t, service.RequestReset())

	assert.Equal(t, []EventKind{EventPopulated, EventReset}, got)
}

func TestErrorsAreDistinct(t *testing.T) {
	all := []error{ErrParse, ErrRange, ErrSelectionRange, ErrSortInProgress, ErrNotPopulated, ErrPosition}
	for i, a := range all {
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Errorf("%v should not match %v", a, b)
			}
		}
	}
}
