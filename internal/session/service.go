package session

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ytget/sort-visualizer/internal/model"
	"github.com/ytget/sort-visualizer/internal/sorter"
)

// EventKind tells the UI what changed
type EventKind int

const (
	// EventPopulated means a new board replaced the previous one
	EventPopulated EventKind = iota
	// EventReset means the board was discarded
	EventReset
	// EventSortStarted means a sort took ownership of the board
	EventSortStarted
	// EventSwapped means two handles exchanged their values
	EventSwapped
	// EventSortFinished means the board is sorted and released
	EventSortFinished
)

// Event is delivered to the update callback. Swap is set for EventSwapped,
// Task holds a snapshot of the sort task for the sort events.
type Event struct {
	Kind EventKind
	Swap sorter.SwapEvent
	Task *model.SortTask
}

// Recorder collects generation and sort metrics
type Recorder interface {
	sorter.Recorder
	ObserveGenerated(length int)
	ObserveReset()
}

var _ Controller = (*Service)(nil)

type nopRecorder struct{}

func (nopRecorder) ObserveSort(string, sorter.Stats) {}
func (nopRecorder) ObserveGenerated(int)             {}
func (nopRecorder) ObserveReset()                    {}

// Service holds the board state and runs sorts
type Service struct {
	mu        sync.Mutex
	gen       Generator
	log       *zap.Logger
	recorder  Recorder
	count     int
	hasCount  bool
	board     *model.Board
	direction model.Direction
	sorting   bool
	lastTask  *model.SortTask
	pace      time.Duration
	onUpdate  func(Event) // callback for UI updates
}

// NewService creates a new session service. log and recorder may be nil.
func NewService(gen Generator, log *zap.Logger, recorder Recorder) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Service{
		gen:       gen,
		log:       log,
		recorder:  recorder,
		direction: model.Descending,
	}
}

// SetUpdateCallback sets the callback function for state updates
func (s *Service) SetUpdateCallback(callback func(Event)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = callback
}

// SetPace changes the delay between swaps for subsequent sorts
func (s *Service) SetPace(pace time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pace = pace
}

// SubmitCount parses raw, generates a sequence of that many values and
// replaces the board. On error the previously accepted count is kept.
func (s *Service) SubmitCount(raw string) (int, error) {
	s.mu.Lock()

	if s.sorting {
		s.mu.Unlock()
		return 0, ErrSortInProgress
	}

	count, err := ParseCount(raw)
	if err != nil {
		s.mu.Unlock()
		s.log.Debug("count rejected", zap.String("input", raw), zap.Error(err))
		return 0, err
	}

	s.count = count
	s.hasCount = true
	s.direction = model.Descending
	s.board = model.NewBoard(s.gen.Generate(count))
	s.mu.Unlock()

	s.recorder.ObserveGenerated(count)
	s.log.Info("sequence generated", zap.Int("count", count))
	s.notifyUpdate(Event{Kind: EventPopulated})
	return count, nil
}

// ParseCount converts user input to a count within [MinCount, MaxCount]
func ParseCount(raw string) (int, error) {
	count, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrParse, raw)
	}
	if count < model.MinCount || count > model.MaxCount {
		return 0, fmt.Errorf("%w: %d is not between %d and %d", ErrRange, count, model.MinCount, model.MaxCount)
	}
	return count, nil
}

// RequestSort flips the direction and starts a sort of the board in the
// new direction. The flip happens before the sort is dispatched, so the
// returned task always sorts in the direction reported by Direction right
// after this call. Every swap is mirrored onto the board as it happens.
// The returned task is a snapshot taken at dispatch; use LastTask for the
// current state.
func (s *Service) RequestSort() (*model.SortTask, *sorter.Task, error) {
	s.mu.Lock()
	if s.board == nil {
		s.mu.Unlock()
		return nil, nil, ErrNotPopulated
	}
	if s.sorting {
		s.mu.Unlock()
		return nil, nil, ErrSortInProgress
	}

	s.direction = s.direction.Toggle()
	dir := s.direction
	board := s.board
	task := model.NewSortTask(dir, board.Len())
	task.Status = model.SortStatusRunning
	s.sorting = true
	s.lastTask = task
	pace := s.pace
	started := *task
	s.mu.Unlock()

	s.log.Info("sort started",
		zap.String("task", task.ID),
		zap.Stringer("direction", dir),
		zap.Int("length", task.Length))
	s.notifyUpdate(Event{Kind: EventSortStarted, Task: &started})

	srt := sorter.New(
		sorter.WithObserver(func(e sorter.SwapEvent) {
			board.SwapValues(e.I, e.J)
			board.MarkSwap(e.I, e.J)
			s.mu.Lock()
			task.Swaps++
			snap := *task
			s.mu.Unlock()
			s.notifyUpdate(Event{Kind: EventSwapped, Swap: e, Task: &snap})
		}),
		sorter.WithPace(pace),
		sorter.WithLogger(s.log),
		sorter.WithRecorder(s.recorder),
	)

	running := srt.Start(sorter.Ints(board.Values()), dir, func(st sorter.Stats) {
		s.finishSort(board, task, st)
	})
	return &started, running, nil
}

// finishSort releases the board once the sort goroutine is done
func (s *Service) finishSort(board *model.Board, task *model.SortTask, st sorter.Stats) {
	board.ClearHighlights()

	s.mu.Lock()
	task.Status = model.SortStatusCompleted
	task.Comparisons = st.Comparisons
	task.Duration = st.Duration
	task.FinishedAt = time.Now()
	s.sorting = false
	finished := *task
	s.mu.Unlock()

	s.log.Info("sort completed",
		zap.String("task", task.ID),
		zap.Int("swaps", st.Swaps),
		zap.Int("comparisons", st.Comparisons),
		zap.Duration("took", st.Duration))
	s.notifyUpdate(Event{Kind: EventSortFinished, Task: &finished})
}

// RequestReset discards the board and restores the initial direction. The
// accepted count is kept so the input can be prefilled.
func (s *Service) RequestReset() error {
	s.mu.Lock()
	if s.sorting {
		s.mu.Unlock()
		return ErrSortInProgress
	}
	s.direction = model.Descending
	s.board = nil
	s.mu.Unlock()

	s.recorder.ObserveReset()
	s.log.Info("board reset")
	s.notifyUpdate(Event{Kind: EventReset})
	return nil
}

// SelectElement regenerates the whole sequence with the previous count when
// the handle at position shows a low value.
func (s *Service) SelectElement(position int) error {
	s.mu.Lock()
	if s.sorting {
		s.mu.Unlock()
		return ErrSortInProgress
	}
	if s.board == nil {
		s.mu.Unlock()
		return ErrNotPopulated
	}

	h, ok := s.board.Handle(position)
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %d", ErrPosition, position)
	}
	if !model.IsLow(h.Value) {
		s.mu.Unlock()
		return fmt.Errorf("%w: %d is greater than %d", ErrSelectionRange, h.Value, model.LowThreshold)
	}

	count := s.count
	s.board = model.NewBoard(s.gen.Generate(count))
	s.mu.Unlock()

	s.recorder.ObserveGenerated(count)
	s.log.Info("sequence regenerated", zap.Int("count", count), zap.Int("selected", h.Value))
	s.notifyUpdate(Event{Kind: EventPopulated})
	return nil
}

// Count returns the last accepted count
func (s *Service) Count() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count, s.hasCount
}

// Board returns the current board, nil before the first population or after a reset
func (s *Service) Board() *model.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board
}

// Direction returns the direction of the latest (or running) sort
func (s *Service) Direction() model.Direction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.direction
}

// IsSorting reports whether a sort owns the board
func (s *Service) IsSorting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sorting
}

// LastTask returns a copy of the most recent sort task, nil if none ran
func (s *Service) LastTask() *model.SortTask {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastTask == nil {
		return nil
	}
	t := *s.lastTask
	return &t
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(e Event) {
	s.mu.Lock()
	callback := s.onUpdate
	s.mu.Unlock()

	if callback != nil {
		callback(e)
	}
}
