package parameter

import "time"

// Loop Timing
const (
	// FrameUpdateInterval bounds how long the loop waits for input before checking timers (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// TargetFPS is the default render rate
	TargetFPS = 60

	// SnowUpdateInterval is the animation tick: snow advances and the frame is redrawn
	SnowUpdateInterval = 500 * time.Millisecond

	// EventQueueSize is the capacity of the forwarded terminal event channel
	EventQueueSize = 256
)

// Headless rendering
const (
	// DefaultHeadlessWidth and DefaultHeadlessHeight are used when no terminal size is available
	DefaultHeadlessWidth  = 80
	DefaultHeadlessHeight = 24

	// DefaultHeadlessFrames is the number of ticks simulated before a headless dump
	DefaultHeadlessFrames = 20
)
