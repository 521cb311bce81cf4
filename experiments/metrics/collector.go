package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Goroutines int
	MaxDepth   int
	Pruning    bool
	Duration   time.Duration
	Nodes      int64 // Positions visited below the root
	Candidates int   // Root moves fully evaluated
	Score      int   // Minimax score of the chosen move
	Canceled   bool
}

type MoveMetric struct {
	Step   int
	Player string // Mark symbol
	Row    int
	Col    int
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string // Mark symbol
	Winner         string // Mark symbol, empty for a tie
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(goroutines, maxDepth int, pruning bool)
	AddNodes(n int64)
	AddCandidate()
	Complete(score int, canceled bool) SearchMetric
}

type collector struct {
	goroutines int
	maxDepth   int
	pruning    bool
	startTime  time.Time
	nodes      atomic.Int64
	candidates atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines, maxDepth int, pruning bool) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.maxDepth = maxDepth
	m.pruning = pruning
}

func (m *collector) AddNodes(n int64) {
	m.nodes.Add(n)
}

func (m *collector) AddCandidate() {
	m.candidates.Add(1)
}

func (m *collector) Complete(score int, canceled bool) SearchMetric {
	return SearchMetric{
		Goroutines: m.goroutines,
		MaxDepth:   m.maxDepth,
		Pruning:    m.pruning,
		Duration:   time.Since(m.startTime),
		Nodes:      m.nodes.Load(),
		Candidates: int(m.candidates.Load()),
		Score:      score,
		Canceled:   canceled,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines, maxDepth int, pruning bool) {}
func (m *dummyCollector) AddNodes(n int64)                             {}
func (m *dummyCollector) AddCandidate()                                {}
func (m *dummyCollector) Complete(score int, canceled bool) SearchMetric {
	return SearchMetric{}
}
