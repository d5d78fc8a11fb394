package session

import (
	"time"

	"github.com/ytget/sort-visualizer/internal/model"
	"github.com/ytget/sort-visualizer/internal/sorter"
)

// Controller defines the operations the UI drives.
type Controller interface {
	SetUpdateCallback(func(Event))

	// SubmitCount parses the raw user input, generates a sequence and builds a new board
	SubmitCount(raw string) (int, error)

	// RequestSort flips the direction and starts sorting the board in the background
	RequestSort() (*model.SortTask, *sorter.Task, error)

	// RequestReset discards the board and restores the initial direction
	RequestReset() error

	// SelectElement regenerates the board when the handle at position shows a low value
	SelectElement(position int) error

	Count() (int, bool)
	Board() *model.Board
	Direction() model.Direction
	IsSorting() bool
	LastTask() *model.SortTask

	// SetPace changes the animation delay used by subsequent sorts
	SetPace(pace time.Duration)
}

// Generator produces sequences for validated counts
type Generator interface {
	Generate(count int) model.Sequence
}
