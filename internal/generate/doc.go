package generate

// Package generate produces bounded random sequences that always contain at
// least one low value, so the board offers something to click for a
// regeneration.
