package core

// RuntimeConfig contains the frontend parameters that are not part of the
// game rules: how large the drawing surface is and how often the frame
// driver calls into the game.
type RuntimeConfig struct {
	ScreenW   int // Screen width in characters
	ScreenH   int // Screen height in characters
	FrameRate int // Frame driver calls per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		FrameRate: 60,
	}
}
