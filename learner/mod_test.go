package learner

import "blackjack/game"

// mockEngine replays a scripted hand: NewHand returns initial, DrawCard deals
// cards in order and Advance returns outcomes in order.
type mockEngine struct {
	initial  game.State
	cards    []game.Card
	outcomes []game.State
	actions  []game.Action
}

func (m *mockEngine) NewHand() game.State {
	return m.initial
}

func (m *mockEngine) DrawCard() game.Card {
	card := m.cards[0]
	m.cards = m.cards[1:]
	return card
}

func (m *mockEngine) ApplyCard(hand game.Hand, card game.Card) game.Hand {
	return hand.Add(card)
}

func (m *mockEngine) Advance(state game.State, action game.Action) game.State {
	m.actions = append(m.actions, action)
	next := m.outcomes[0]
	m.outcomes = m.outcomes[1:]
	return next
}

// fixedSource returns the same float on every call and ints in order.
type fixedSource struct {
	float float64
	ints  []int
}

func (f *fixedSource) Float64() float64 {
	return f.float
}

func (f *fixedSource) Intn(n int) int {
	v := f.ints[0]
	f.ints = f.ints[1:]
	return v % n
}

// cardSource deals card ranks in order for the standard engine.
type cardSource struct {
	ranks []int
}

func (c *cardSource) Intn(n int) int {
	rank := c.ranks[0]
	c.ranks = c.ranks[1:]
	return rank - 1
}

func inProgress(total int, ace bool, upcard int) game.State {
	sum := total
	if ace {
		sum -= 10
	}
	return game.State{
		Player: game.Hand{Sum: sum, Ace: ace},
		Dealer: game.Hand{Sum: upcard},
		Status: game.InProgress,
	}
}

func concluded(status game.Status) game.State {
	return game.State{Player: game.Hand{Sum: 20}, Dealer: game.Hand{Sum: 19}, Status: status}
}
