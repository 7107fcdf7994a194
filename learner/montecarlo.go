package learner

import (
	"blackjack/experiments/metrics"
	"blackjack/game"
	"blackjack/meta"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// VisitMode decides how a pair that recurs within one episode is credited.
type VisitMode int

const (
	// FirstVisit credits a pair once per episode
	FirstVisit VisitMode = iota
	// EveryVisit credits a pair once per occurrence
	EveryVisit
)

func (v VisitMode) String() string {
	if v == EveryVisit {
		return "every"
	}
	return "first"
}

func ParseVisitMode(s string) (VisitMode, error) {
	switch s {
	case "first":
		return FirstVisit, nil
	case "every":
		return EveryVisit, nil
	default:
		return FirstVisit, fmt.Errorf("unknown visit mode %q", s)
	}
}

type Option func(mc *MonteCarlo)

type MonteCarlo struct {
	engine    game.Engine
	episodes  int
	epsilon   float64
	source    Source
	visitMode VisitMode
	metrics   metrics.Collector
	policy    *EpsilonGreedy
}

func WithEpisodes(episodes int) Option {
	return func(mc *MonteCarlo) {
		mc.episodes = episodes
	}
}

func WithEpsilon(epsilon float64) Option {
	return func(mc *MonteCarlo) {
		mc.epsilon = epsilon
	}
}

func WithSource(source Source) Option {
	return func(mc *MonteCarlo) {
		if source != nil {
			mc.source = source
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(mc *MonteCarlo) {
		mc.source = rand.New(rand.NewSource(seed))
	}
}

func WithVisitMode(mode VisitMode) Option {
	return func(mc *MonteCarlo) {
		mc.visitMode = mode
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(mc *MonteCarlo) {
		if collector != nil {
			mc.metrics = collector
		}
	}
}

func NewMonteCarlo(engine game.Engine, options ...Option) *MonteCarlo {
	if engine == nil {
		panic("engine cannot be nil")
	}
	mc := &MonteCarlo{ // Default values
		engine:    engine,
		episodes:  meta.EPISODES,
		epsilon:   meta.EPSILON,
		visitMode: FirstVisit,
		metrics:   metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(mc)
	}
	if mc.episodes <= 0 {
		panic("episodes must be positive")
	}
	if mc.source == nil {
		mc.source = rand.New(rand.NewSource(meta.SEED))
	}
	mc.policy = NewEpsilonGreedy(mc.epsilon, mc.source)
	return mc
}

func (mc *MonteCarlo) Episodes() int {
	return mc.episodes
}

// Train plays the configured number of episodes one after another, updating
// table after each. Any error aborts training.
func (mc *MonteCarlo) Train(table *Table) (metrics.TrainingMetric, error) {
	log.Info().Msgf("training for %d episodes with epsilon %v and %s-visit updates", mc.episodes, mc.epsilon, mc.visitMode)

	mc.metrics.Start(mc.episodes, mc.epsilon)
	for episode := 1; episode <= mc.episodes; episode++ {
		status, err := mc.RunEpisode(table)
		if err != nil {
			return mc.metrics.Complete(), fmt.Errorf("episode %d: %w", episode, err)
		}
		log.Debug().Int("episode", episode).Stringer("status", status).Msg("episode complete")
	}
	metric := mc.metrics.Complete()

	log.Info().Msgf("completed %d episodes in %s", mc.episodes, metric.Duration)
	return metric, nil
}

// RunEpisode plays one hand to completion and credits its outcome to every
// pair decided on during the hand.
func (mc *MonteCarlo) RunEpisode(table *Table) (game.Status, error) {
	state := mc.engine.NewHand()

	// No decision exists below the minimum total: always hit
	for state.Status == game.InProgress && state.Player.Total() < MinPlayerTotal {
		state.Player = mc.engine.ApplyCard(state.Player, mc.engine.DrawCard())
	}

	visited := [NumPairs]bool{}
	returns := []Pair{}
	for state.Status == game.InProgress {
		s, err := Compress(state)
		if err != nil {
			return state.Status, err
		}
		action, err := mc.policy.SelectAction(s, table)
		if err != nil {
			return state.Status, err
		}

		pair := Pair{State: s, Action: action}
		i, err := pair.index()
		if err != nil {
			return state.Status, err
		}
		if mc.visitMode == EveryVisit || !visited[i] {
			returns = append(returns, pair)
			visited[i] = true
		}
		mc.metrics.AddDecision()

		state = mc.engine.Advance(state, action)
	}

	reward, err := Reward(state.Status)
	if err != nil {
		return state.Status, err
	}
	err = table.Update(returns, reward)
	if err != nil {
		return state.Status, err
	}
	mc.metrics.AddOutcome(state.Status)
	return state.Status, nil
}
