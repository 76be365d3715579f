package core

// RuntimeConfig is what the UI hands a game when a session starts.
type RuntimeConfig struct {
	ScreenW  int   // terminal columns
	ScreenH  int   // terminal rows
	TickRate int   // ticks per second
	Seed     int64 // 0 lets the caller pick a time-based seed
}

// DefaultConfig is an 80x24 terminal at 20 ticks per second (50 ms per tick).
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 20}
}

// GameState is the summary the UI reads after each step.
type GameState struct {
	Score    int
	Lines    int
	Pieces   int
	GameOver bool
	// Paused is set while the game ignores input, e.g. during a line clear.
	Paused bool
}

type StepResult struct {
	State GameState
}
