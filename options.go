package rcube

// TrackerOption configures Tracker behavior.
type TrackerOption func(*trackerConfig)

type trackerConfig struct {
	moveHistory    bool
	fitnessChanged func(prev, cur int)
}

func defaultTrackerConfig() *trackerConfig {
	return &trackerConfig{
		moveHistory: true,
	}
}

// WithMoveHistory enables or disables move history tracking.
// When enabled (default), applied moves are kept and can be undone.
// Disable this for long runs to reduce memory usage.
func WithMoveHistory(enabled bool) TrackerOption {
	return func(c *trackerConfig) {
		c.moveHistory = enabled
	}
}

// WithFitnessCallback registers a callback that fires whenever a move
// changes the cube's fitness.
func WithFitnessCallback(cb func(prev, cur int)) TrackerOption {
	return func(c *trackerConfig) {
		c.fitnessChanged = cb
	}
}
