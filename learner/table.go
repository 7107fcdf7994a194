package learner

import (
	"blackjack/game"
)

// Table holds the action-value estimates and visit counts of every
// state-action pair. It is not safe for concurrent use.
type Table struct {
	values [NumPairs]float64
	counts [NumPairs]int
}

func NewTable() *Table {
	t := &Table{}
	seen := [NumPairs]bool{}
	for _, state := range StateSpace() {
		for a := 0; a < game.NumActions; a++ {
			i, err := Pair{State: state, Action: game.Action(a)}.index()
			if err != nil || seen[i] {
				panic("state space does not map onto the table")
			}
			seen[i] = true
			t.values[i] = 0.0
			t.counts[i] = 0
		}
	}
	return t
}

func (t *Table) Len() int {
	return NumPairs
}

func (t *Table) Value(state State, action game.Action) (float64, error) {
	i, err := Pair{State: state, Action: action}.index()
	if err != nil {
		return 0, err
	}
	return t.values[i], nil
}

func (t *Table) Count(state State, action game.Action) (int, error) {
	i, err := Pair{State: state, Action: action}.index()
	if err != nil {
		return 0, err
	}
	return t.counts[i], nil
}

// Values returns the estimates of both actions, indexed by action.
func (t *Table) Values(state State) ([game.NumActions]float64, error) {
	values := [game.NumActions]float64{}
	i, err := state.index()
	if err != nil {
		return values, err
	}
	copy(values[:], t.values[i*game.NumActions:(i+1)*game.NumActions])
	return values, nil
}

// Update folds a terminal reward into the running mean of every pair. All
// pairs are checked before the table is touched.
func (t *Table) Update(pairs []Pair, reward float64) error {
	indices := make([]int, len(pairs))
	for k, pair := range pairs {
		i, err := pair.index()
		if err != nil {
			return err
		}
		indices[k] = i
	}

	for _, i := range indices {
		t.counts[i]++
		t.values[i] += (reward - t.values[i]) / float64(t.counts[i])
	}
	return nil
}
