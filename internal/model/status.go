package model

// SortStatus represents the state of a sort task
type SortStatus string

const (
	// SortStatusPending means the task was created but the sort has not started
	SortStatusPending SortStatus = "Pending"

	// SortStatusRunning means the sort goroutine is reordering the board
	SortStatusRunning SortStatus = "Running"

	// SortStatusCompleted means the board holds the sorted sequence
	SortStatusCompleted SortStatus = "Completed"
)

// String returns the string representation of SortStatus
func (s SortStatus) String() string {
	return string(s)
}

// IsActive returns true while the task still owns the board
func (s SortStatus) IsActive() bool {
	return s == SortStatusPending || s == SortStatusRunning
}

// IsFinished returns true once the board is released
func (s SortStatus) IsFinished() bool {
	return s == SortStatusCompleted
}

// Direction is the order a sort produces
type Direction int

const (
	// Descending sorts largest-first
	Descending Direction = iota
	// Ascending sorts smallest-first
	Ascending
)

// String returns the string representation of Direction
func (d Direction) String() string {
	switch d {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return "unknown"
	}
}

// Toggle returns the opposite direction
func (d Direction) Toggle() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

// Before reports whether value a belongs before value b in this direction.
// Equal values always qualify, so duplicates cluster next to each other.
func (d Direction) Before(a, b int) bool {
	if d == Descending {
		return a >= b
	}
	return a <= b
}

// Highlight is the transient visual state of a handle
type Highlight int

const (
	HighlightNormal Highlight = iota
	// HighlightPivotA marks the first position of the latest swap
	HighlightPivotA
	// HighlightPivotB marks the second position of the latest swap
	HighlightPivotB
)

// String returns the string representation of Highlight
func (h Highlight) String() string {
	switch h {
	case HighlightNormal:
		return "normal"
	case HighlightPivotA:
		return "pivot-a"
	case HighlightPivotB:
		return "pivot-b"
	default:
		return "unknown"
	}
}
