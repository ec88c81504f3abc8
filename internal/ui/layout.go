package ui

import "time"

// Screen rows reserved around the desktop area.
const (
	// TopBarHeight is the menu bar above the desktop.
	TopBarHeight = 1

	// DockHeight is the launcher row below the desktop.
	DockHeight = 1
)

// Window chrome geometry, in cells relative to the window origin.
const (
	// closeButtonWidth covers " × " at the right end of the title bar.
	closeButtonWidth = 3

	// maxButtonWidth covers " □" just left of the close button.
	maxButtonWidth = 2

	// resizeHandleWidth is how many cells of the bottom-right corner grab a
	// resize.
	resizeHandleWidth = 2
)

// Pointer and keyboard step sizes.
const (
	// WheelStep is the number of lines one wheel notch scrolls.
	WheelStep = 3

	// NudgeX and NudgeY are the arrow-key move steps.
	NudgeX = 2
	NudgeY = 1
)

// Timing constants.
const (
	// ClockInterval is the refresh interval of the clock and live panels.
	ClockInterval = time.Second
)
