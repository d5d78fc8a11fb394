package model

import (
	"sync"
)

// Value domain of a generated sequence
const (
	MinValue     = 1
	MaxValue     = 1000
	LowThreshold = 30

	MinCount = 1
	MaxCount = 1000
)

// Sequence is an ordered list of generated integers
type Sequence []int

// HasLow reports whether any element is a low value
func (s Sequence) HasLow() bool {
	for _, v := range s {
		if IsLow(v) {
			return true
		}
	}
	return false
}

// IsLow reports whether selecting a handle showing v regenerates the sequence
func IsLow(v int) bool {
	return v <= LowThreshold
}

// Handle is a positional slot showing one element
type Handle struct {
	Value     int
	Highlight Highlight
}

// Board is the ordered list of handles mirroring a sequence on screen.
// Handles are never reordered; swaps exchange displayed values only.
type Board struct {
	mu      sync.RWMutex
	handles []Handle
	marked  []int // positions highlighted by the latest MarkSwap
}

// NewBoard creates one handle per value, in order
func NewBoard(seq Sequence) *Board {
	handles := make([]Handle, len(seq))
	for i, v := range seq {
		handles[i] = Handle{Value: v}
	}
	return &Board{handles: handles}
}

// Len returns the number of handles
func (b *Board) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handles)
}

// Handle returns a copy of the handle at position i
func (b *Board) Handle(i int) (Handle, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if i < 0 || i >= len(b.handles) {
		return Handle{}, false
	}
	return b.handles[i], true
}

// Values returns the displayed values in position order
func (b *Board) Values() Sequence {
	b.mu.RLock()
	defer b.mu.RUnlock()
	values := make(Sequence, len(b.handles))
	for i, h := range b.handles {
		values[i] = h.Value
	}
	return values
}

// Snapshot returns a copy of all handles
func (b *Board) Snapshot() []Handle {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]Handle, len(b.handles))
	copy(out, b.handles)
	return out
}

// SwapValues exchanges the displayed values at positions i and j.
// A self-swap leaves the values untouched.
func (b *Board) SwapValues(i, j int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handles[i].Value, b.handles[j].Value = b.handles[j].Value, b.handles[i].Value
}

// MarkSwap clears the previous highlights and marks the positions of the
// latest swap. For a self-swap only the A highlight survives.
func (b *Board) MarkSwap(i, j int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, k := range b.marked {
		b.handles[k].Highlight = HighlightNormal
	}
	b.handles[j].Highlight = HighlightPivotB
	b.handles[i].Highlight = HighlightPivotA
	b.marked = append(b.marked[:0], i, j)
}

// ClearHighlights resets every handle to the normal state
func (b *Board) ClearHighlights() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for k := range b.handles {
		b.handles[k].Highlight = HighlightNormal
	}
	b.marked = b.marked[:0]
}

// LowPositions returns positions currently showing a low value
func (b *Board) LowPositions() []int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	var positions []int
	for i, h := range b.handles {
		if IsLow(h.Value) {
			positions = append(positions, i)
		}
	}
	return positions
}
