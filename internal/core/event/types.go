package event

// PlayerKilled is emitted once when the player reaches the terminal state.
type PlayerKilled struct {
	RunID       string
	Tick        uint64
	Distance    float64 // furthest horizontal distance from spawn
	MaxInsanity float64
	Seed        int64
}

// LightsChanged is emitted on every lights cycle transition.
type LightsChanged struct {
	On   bool
	Tick uint64
}

// AntagonistSpotted is emitted the first tick the player sees an antagonist.
type AntagonistSpotted struct {
	Tick     uint64
	Distance float64
}
