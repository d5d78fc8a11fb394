package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It has two cards: an intro card collecting how many numbers to generate, and
// a board card showing one button per number with Sort and Reset controls.
// All state lives in the session controller; the UI only renders it and
// forwards user actions. All UI strings are localized via Localization.
