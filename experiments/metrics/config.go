package metrics

// AgentConfig describes one player taking part in an experiment.
type AgentConfig struct {
	ID         int
	Kind       string // "minimax" or "random"
	MaxDepth   int
	Goroutines int
	Pruning    bool
	Seed       uint64
}

const (
	MinimaxAgent = "minimax"
	RandomAgent  = "random"
)
