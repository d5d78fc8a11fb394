package session

// Package session owns the state behind the board: the accepted count, the
// handles on screen, the sort direction and the in-flight sort. It validates
// user input, generates sequences, and mirrors every swap of a running sort
// onto the board. While a sort is in flight the sort goroutine is the only
// writer of the board and every other mutating request is rejected.
