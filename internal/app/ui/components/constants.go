package components

import "time"

// UI timing constants
const (
	// UITickInterval drives the status bar animations, independent of the chain driver
	UITickInterval = 100 * time.Millisecond

	// UITicksPerSecond is the derived animation frame rate
	UITicksPerSecond = int(time.Second / UITickInterval)

	StatsPollingInterval = time.Second
	StatsCallTimeout     = 500 * time.Millisecond
)

// Layout constants
const (
	StatusBarHeight       = 2
	StatusSeparatorMin    = 4
	StatusFixedChars      = 10
	MinStageRows          = 1
	DefaultStatusBarWidth = 80
)

// Memory conversion
const (
	MBToGB = 1024
)
