package sorter

// Package sorter implements an iterative, explicit-stack quicksort that works
// on an abstract mutable buffer and reports every swap to an observer. The
// observer is how a board of on-screen handles follows the algorithm step by
// step without the algorithm knowing about the display.
