package learner

import (
	"blackjack/game"
	"blackjack/meta"
	"errors"
)

// Rewards for each terminal outcome from the player's perspective
const WIN = 1.0
const DRAW = 0.0
const LOSS = -1.0

const (
	MinPlayerTotal = meta.MIN_DECISION_TOTAL
	MaxPlayerTotal = game.BlackjackLimit
	MinUpcard      = int(game.Ace)
	MaxUpcard      = int(game.MaxCard)

	numTotals  = MaxPlayerTotal - MinPlayerTotal + 1
	numUpcards = MaxUpcard - MinUpcard + 1

	NumStates = numTotals * 2 * numUpcards
	NumPairs  = NumStates * game.NumActions
)

var (
	ErrKeyNotFound    = errors.New("key not found")
	ErrInvalidStatus  = errors.New("invalid status")
	ErrInvalidEpsilon = errors.New("epsilon must be within [0, 1]")
)

// State is the compressed view of a hand used for value lookups. It drops the
// dealer's hole cards and the order in which cards were dealt.
type State struct {
	PlayerTotal  int
	UsableAce    bool
	DealerUpcard int
}

type Pair struct {
	State  State
	Action game.Action
}

// Source is the entropy the policy consumes.
type Source interface {
	Float64() float64
	Intn(n int) int
}
