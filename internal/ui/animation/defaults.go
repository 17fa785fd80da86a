package animation

import "time"

// DefaultConfig returns the standard indicator timing.
func DefaultConfig() Config {
	return Config{
		PulseBright: Range{
			Min: 900 * time.Millisecond,
			Max: 1100 * time.Millisecond,
		},
		PulseDim: Range{
			Min: 400 * time.Millisecond,
			Max: 600 * time.Millisecond,
		},
		FlashOn:  250 * time.Millisecond,
		FlashOff: 250 * time.Millisecond,
	}
}
