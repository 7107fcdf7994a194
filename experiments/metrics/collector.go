package metrics

import (
	"blackjack/game"
	"sync/atomic"
	"time"
)

type TrainingMetric struct {
	Episodes  int
	Epsilon   float64
	Decisions int
	Wins      int
	Draws     int
	Losses    int
	StartTime time.Time
	Duration  time.Duration
}

// WinRate is the share of completed episodes the player won.
func (m TrainingMetric) WinRate() float64 {
	completed := m.Wins + m.Draws + m.Losses
	if completed == 0 {
		return 0
	}
	return float64(m.Wins) / float64(completed)
}

// Collector records training progress. Counters may be read from another
// goroutine while training runs.
type Collector interface {
	Start(episodes int, epsilon float64)
	AddDecision()
	AddOutcome(status game.Status)
	Progress() (completed, total int)
	Complete() TrainingMetric
}

type collector struct {
	episodes  atomic.Int64
	epsilon   float64
	startTime time.Time
	decisions atomic.Int64
	wins      atomic.Int64
	draws     atomic.Int64
	losses    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(episodes int, epsilon float64) {
	m.startTime = time.Now()
	m.episodes.Store(int64(episodes))
	m.epsilon = epsilon
}

func (m *collector) AddDecision() {
	m.decisions.Add(1)
}

func (m *collector) AddOutcome(status game.Status) {
	switch status {
	case game.Win:
		m.wins.Add(1)
	case game.Draw:
		m.draws.Add(1)
	case game.Loss:
		m.losses.Add(1)
	}
}

func (m *collector) Progress() (int, int) {
	completed := m.wins.Load() + m.draws.Load() + m.losses.Load()
	return int(completed), int(m.episodes.Load())
}

func (m *collector) Complete() TrainingMetric {
	return TrainingMetric{
		Episodes:  int(m.episodes.Load()),
		Epsilon:   m.epsilon,
		Decisions: int(m.decisions.Load()),
		Wins:      int(m.wins.Load()),
		Draws:     int(m.draws.Load()),
		Losses:    int(m.losses.Load()),
		StartTime: m.startTime,
		Duration:  time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(episodes int, epsilon float64) {}
func (m *dummyCollector) AddDecision()                         {}
func (m *dummyCollector) AddOutcome(status game.Status)        {}
func (m *dummyCollector) Progress() (int, int)                 { return 0, 0 }
func (m *dummyCollector) Complete() TrainingMetric             { return TrainingMetric{} }
