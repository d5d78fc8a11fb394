package sorter

// Buffer is a mutable ordered sequence of integers
type Buffer interface {
	Len() int
	Value(i int) int
	Swap(i, j int)
}

// Ints adapts a slice to Buffer
type Ints []int

func (s Ints) Len() int        { return len(s) }
func (s Ints) Value(i int) int { return s[i] }
func (s Ints) Swap(i, j int)   { s[i], s[j] = s[j], s[i] }

// SwapEvent describes one swap performed while partitioning [Low, High]
type SwapEvent struct {
	I, J      int
	Low, High int
	Pivot     int // pivot value of the current partition
}

// Observer receives swap events on the sorting goroutine
type Observer func(SwapEvent)
