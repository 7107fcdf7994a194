package learner

import (
	"blackjack/game"
	"fmt"
	"math"
)

type EpsilonGreedy struct {
	epsilon float64
	source  Source
}

func NewEpsilonGreedy(epsilon float64, source Source) *EpsilonGreedy {
	if err := ValidateEpsilon(epsilon); err != nil {
		panic(err.Error())
	}
	if source == nil {
		panic("source cannot be nil")
	}
	return &EpsilonGreedy{epsilon: epsilon, source: source}
}

// ValidateEpsilon rejects exploration rates that are not probabilities.
func ValidateEpsilon(epsilon float64) error {
	if math.IsNaN(epsilon) || epsilon < 0 || epsilon > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidEpsilon, epsilon)
	}
	return nil
}

func (p *EpsilonGreedy) Epsilon() float64 {
	return p.epsilon
}

// SelectAction explores uniformly with probability epsilon and otherwise
// exploits the table.
func (p *EpsilonGreedy) SelectAction(state State, table *Table) (game.Action, error) {
	values, err := table.Values(state)
	if err != nil {
		return game.Stick, err
	}

	if p.source.Float64() < p.epsilon {
		return game.Action(p.source.Intn(game.NumActions)), nil
	}
	return greedy(values), nil
}

// greedy picks the highest valued action, the lowest index winning ties.
func greedy(values [game.NumActions]float64) game.Action {
	best := 0
	for a := 1; a < len(values); a++ {
		if values[a] > values[best] {
			best = a
		}
	}
	return game.Action(best)
}
