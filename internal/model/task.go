package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TaskIDPrefix prefixes every sort task identifier
const TaskIDPrefix = "sort-"

// SortTask describes a single sort pass over a board
type SortTask struct {
	ID          string
	Direction   Direction
	Status      SortStatus
	Length      int           // number of handles being sorted
	Swaps       int           // swaps mirrored onto the board so far
	Comparisons int           // pivot comparisons performed
	Duration    time.Duration // wall time of the sort body
	StartedAt   time.Time
	FinishedAt  time.Time
}

// NewSortTask creates a pending task for a board of the given length
func NewSortTask(direction Direction, length int) *SortTask {
	return &SortTask{
		ID:        generateTaskID(),
		Direction: direction,
		Status:    SortStatusPending,
		Length:    length,
		StartedAt: time.Now(),
	}
}

// Summary returns a short human readable description of the task
func (t *SortTask) Summary() string {
	if t.Status != SortStatusCompleted {
		return fmt.Sprintf("%s %d items (%s)", t.Direction, t.Length, t.Status)
	}
	return fmt.Sprintf("%s %d items: %d swaps, %d comparisons in %s",
		t.Direction, t.Length, t.Swaps, t.Comparisons, t.Duration.Round(time.Microsecond))
}

// generateTaskID generates a time-ordered unique task ID
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(TaskIDPrefix+"%d", time.Now().UnixNano())
	}
	return TaskIDPrefix + id.String()
}
