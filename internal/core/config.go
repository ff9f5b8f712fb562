package core

// RuntimeConfig is what a frontend tells a game when a run starts.
// ScreenW and ScreenH size the character view only; the simulation works
// in arena units and ignores them.
type RuntimeConfig struct {
	ScreenW  int   // columns
	ScreenH  int   // rows
	TickRate int   // ticks per second, 60 when unset
	Seed     int64 // 0 lets the frontend pick a time-based seed
}

// TickSeconds is the simulated time covered by one Step.
func (c RuntimeConfig) TickSeconds() float64 {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return 1 / float64(rate)
}

// GameState is the run status a game reports back to its frontend.
type GameState struct {
	Score    int
	Level    int  // 1-based
	GameOver bool // lost or won
	Won      bool // cleared the final level
	Paused   bool
}

// StepResult carries the state after one simulation tick.
type StepResult struct {
	State GameState
}
