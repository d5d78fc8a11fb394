package session

import "errors"

var (
	// ErrParse means the count input is not an integer.
	ErrParse = errors.New("invalid input, please enter a valid number")
	// ErrRange means the count is outside [MinCount, MaxCount].
	ErrRange = errors.New("count is out of range")
	// ErrSelectionRange means the selected handle is too large to trigger a regeneration.
	ErrSelectionRange = errors.New("selected value is too large")
	// ErrSortInProgress means a sort currently owns the board.
	ErrSortInProgress = errors.New("sort is in progress")
	// ErrNotPopulated means no board has been generated yet.
	ErrNotPopulated = errors.New("no sequence generated")
	// ErrPosition means the selected position is not on the board.
	ErrPosition = errors.New("position is out of range")
)
