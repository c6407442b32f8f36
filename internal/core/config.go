package core

// RuntimeConfig contains the host parameters a World is built for.
type RuntimeConfig struct {
	CanvasW  int // Drawing surface width in world pixels
	CanvasH  int // Drawing surface height in world pixels
	TickRate int // Frames per second requested from the host scheduler
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		CanvasW:  800,
		CanvasH:  400,
		TickRate: 60,
	}
}
