package game

// Status of a hand. The values match the codes the reward function maps from.
type Status int

const (
	InProgress Status = iota + 1
	Win
	Draw
	Loss
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Win:
		return "win"
	case Draw:
		return "draw"
	case Loss:
		return "loss"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether the hand has concluded.
func (s Status) IsTerminal() bool {
	return s == Win || s == Draw || s == Loss
}

// Action is a player decision.
type Action int

const (
	Stick Action = iota
	Hit
)

const NumActions = 2

func (a Action) String() string {
	if a == Hit {
		return "hit"
	}
	return "stick"
}

// State is the raw state of one hand. Until the dealer plays, Dealer holds only
// the upcard.
type State struct {
	Player Hand
	Dealer Hand
	Status Status
}

// Engine simulates a single hand of Blackjack.
type Engine interface {
	// NewHand deals a fresh hand
	NewHand() State
	// DrawCard returns a random card value between 1 (ace) and 10
	DrawCard() Card
	ApplyCard(hand Hand, card Card) Hand
	// Advance applies the player's action and resolves the dealer's response
	Advance(state State, action Action) State
}

// Source is the entropy the engine draws cards from.
type Source interface {
	Intn(n int) int
}
