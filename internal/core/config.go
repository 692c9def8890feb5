package core

// RuntimeConfig contains runtime parameters passed to the engine at startup.
// Screen dimensions come from the terminal; the seed enables deterministic
// simulation in tests and replays.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic spawns (0 = time-based, resolved by the platform)
}

// DefaultRuntimeConfig returns a RuntimeConfig with sensible defaults.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}
