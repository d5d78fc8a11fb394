package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconSort     = "⇅"
	IconReset    = "↺"
)

// Layout sizing (board)
const (
	HandleWidth  float32 = 60
	HandleHeight float32 = 25
	HandleGap    float32 = 5

	// MaxHandlesInColumn is how many handles stack before a new column starts
	MaxHandlesInColumn = 10
	// MaxVisibleColumns is how many columns fit before the board scrolls
	MaxVisibleColumns = 10

	ControlsWidth float32 = 100
	InputWidth    float32 = 200
)

// Window
const (
	WindowWidth  float32 = 1000
	WindowHeight float32 = 600
)
