package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedSource deals cards in the given order, ranks 11-13 being faces.
type scriptedSource struct {
	ranks []int
}

func (s *scriptedSource) Intn(n int) int {
	if len(s.ranks) == 0 {
		panic("scripted source exhausted")
	}
	rank := s.ranks[0]
	s.ranks = s.ranks[1:]
	if rank < 1 || rank > n {
		panic("scripted rank out of range")
	}
	return rank - 1
}

func newScriptedEngine(ranks ...int) *StandardEngine {
	return NewStandardEngine(NewStandardRules(), &scriptedSource{ranks: ranks})
}

func TestHand(t *testing.T) {
	t.Run("counting an ace as eleven when it does not bust", func(t *testing.T) {
		hand := Hand{}.Add(Ace).Add(6)

		require.True(t, hand.UsableAce())
		require.Equal(t, 17, hand.Total())
	})

	t.Run("demoting an ace to one to avoid busting", func(t *testing.T) {
		hand := Hand{}.Add(Ace).Add(6).Add(10)

		require.False(t, hand.UsableAce())
		require.Equal(t, 17, hand.Total())
	})

	t.Run("counting only one ace as eleven", func(t *testing.T) {
		hand := Hand{}.Add(Ace).Add(Ace)

		require.True(t, hand.UsableAce())
		require.Equal(t, 12, hand.Total())
	})

	t.Run("hand without an ace", func(t *testing.T) {
		hand := Hand{}.Add(9).Add(8)

		require.False(t, hand.UsableAce())
		require.Equal(t, 17, hand.Total())
	})
}

func TestDrawCard(t *testing.T) {
	t.Run("faces count as ten", func(t *testing.T) {
		engine := newScriptedEngine(1, 9, 10, 11, 12, 13)

		got := []Card{}
		for i := 0; i < 6; i++ {
			got = append(got, engine.DrawCard())
		}

		require.Equal(t, []Card{Ace, 9, 10, 10, 10, 10}, got)
	})
}

func TestNewHand(t *testing.T) {
	t.Run("dealing two player cards and the dealer upcard", func(t *testing.T) {
		engine := newScriptedEngine(10, 4, 7)

		state := engine.NewHand()

		require.Equal(t, 14, state.Player.Total())
		require.Equal(t, Card(7), state.Dealer.Upcard())
		require.Equal(t, InProgress, state.Status)
	})

	t.Run("natural ends the hand as a win", func(t *testing.T) {
		engine := newScriptedEngine(1, 13, 10)

		state := engine.NewHand()

		require.Equal(t, 21, state.Player.Total())
		require.Equal(t, Win, state.Status)
	})
}

func TestAdvance(t *testing.T) {
	twenty := State{Player: Hand{Sum: 20}, Dealer: Hand{Sum: 10}, Status: InProgress}

	t.Run("sticking when the dealer busts", func(t *testing.T) {
		engine := newScriptedEngine(6, 10)

		got := engine.Advance(twenty, Stick)

		require.Equal(t, 26, got.Dealer.Total())
		require.Equal(t, Win, got.Status)
	})

	t.Run("sticking above the dealer", func(t *testing.T) {
		engine := newScriptedEngine(9)

		got := engine.Advance(twenty, Stick)

		require.Equal(t, 19, got.Dealer.Total())
		require.Equal(t, Win, got.Status)
	})

	t.Run("sticking level with the dealer", func(t *testing.T) {
		engine := newScriptedEngine(12)

		got := engine.Advance(twenty, Stick)

		require.Equal(t, Draw, got.Status)
	})

	t.Run("sticking below the dealer", func(t *testing.T) {
		engine := newScriptedEngine(1)

		got := engine.Advance(twenty, Stick)

		require.Equal(t, 21, got.Dealer.Total())
		require.Equal(t, Loss, got.Status)
	})

	t.Run("hitting to a bust", func(t *testing.T) {
		engine := newScriptedEngine(5)

		got := engine.Advance(twenty, Hit)

		require.Equal(t, 25, got.Player.Total())
		require.Equal(t, Loss, got.Status)
		require.Equal(t, twenty.Dealer, got.Dealer, "Dealer should not play after a bust")
	})

	t.Run("hitting to twenty one against a dealer short of it", func(t *testing.T) {
		engine := newScriptedEngine(1, 8)

		got := engine.Advance(twenty, Hit)

		require.Equal(t, 21, got.Player.Total())
		require.Equal(t, Win, got.Status)
	})

	t.Run("hitting to twenty one against a dealer on twenty one", func(t *testing.T) {
		engine := newScriptedEngine(1, 1)

		got := engine.Advance(twenty, Hit)

		require.Equal(t, Draw, got.Status)
	})

	t.Run("hitting below the limit keeps the hand going", func(t *testing.T) {
		engine := newScriptedEngine(2)
		state := State{Player: Hand{Sum: 12}, Dealer: Hand{Sum: 3}, Status: InProgress}

		got := engine.Advance(state, Hit)

		require.Equal(t, 14, got.Player.Total())
		require.Equal(t, InProgress, got.Status)
	})

	t.Run("soft hand absorbs a large card", func(t *testing.T) {
		engine := newScriptedEngine(10)
		state := State{Player: Hand{Sum: 7, Ace: true}, Dealer: Hand{Sum: 3}, Status: InProgress}

		got := engine.Advance(state, Hit)

		require.Equal(t, 17, got.Player.Total())
		require.False(t, got.Player.UsableAce())
		require.Equal(t, InProgress, got.Status)
	})

	t.Run("concluded hand is left unchanged", func(t *testing.T) {
		engine := newScriptedEngine()
		state := State{Player: Hand{Sum: 20}, Dealer: Hand{Sum: 18}, Status: Win}

		got := engine.Advance(state, Hit)

		require.Equal(t, state, got)
	})
}

func TestCustomLimit(t *testing.T) {
	rules := &StandardRules{DealerStand: 17, Bust: 25}

	t.Run("valuing aces against the rules' limit", func(t *testing.T) {
		hand := Hand{Sum: 12, Ace: true}

		require.Equal(t, 12, hand.Total())
		require.Equal(t, 22, hand.TotalWithin(rules.Limit()))
	})

	t.Run("sticking on a soft hand that only fits the higher limit", func(t *testing.T) {
		// Dealer shows 10 and draws a ten to stand on 20
		engine := NewStandardEngine(rules, &scriptedSource{ranks: []int{10}})
		state := State{Player: Hand{Sum: 12, Ace: true}, Dealer: Hand{Sum: 10}, Status: InProgress}

		got := engine.Advance(state, Stick)

		require.Equal(t, 20, got.Dealer.Total())
		require.Equal(t, Win, got.Status)
	})

	t.Run("hitting past twenty one without busting", func(t *testing.T) {
		engine := NewStandardEngine(rules, &scriptedSource{ranks: []int{2}})
		state := State{Player: Hand{Sum: 20}, Dealer: Hand{Sum: 10}, Status: InProgress}

		got := engine.Advance(state, Hit)

		require.Equal(t, InProgress, got.Status)
		require.Equal(t, 22, got.Player.Sum)
	})
}

func TestNewStandardEngine(t *testing.T) {
	t.Run("panics without a source", func(t *testing.T) {
		require.Panics(t, func() {
			NewStandardEngine(NewStandardRules(), nil)
		})
	})
}
