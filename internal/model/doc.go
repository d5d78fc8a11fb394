package model

// Package model defines domain data structures used across the app: the
// generated sequence, the board of positional handles that mirrors it on
// screen, sort directions and sort task state. Handles are identified by
// position only; sorting overwrites their displayed values in place.
