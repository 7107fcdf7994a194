package learner

import (
	"blackjack/game"
	"fmt"
)

// StateSpace enumerates every state in which the player makes a decision.
func StateSpace() []State {
	states := make([]State, 0, NumStates)
	for card := MinUpcard; card <= MaxUpcard; card++ {
		for total := MinPlayerTotal; total <= MaxPlayerTotal; total++ {
			states = append(states, State{PlayerTotal: total, UsableAce: false, DealerUpcard: card})
			states = append(states, State{PlayerTotal: total, UsableAce: true, DealerUpcard: card})
		}
	}
	return states
}

// Compress reduces a raw hand to the state the learner decides on.
func Compress(state game.State) (State, error) {
	s := State{
		PlayerTotal:  state.Player.Total(),
		UsableAce:    state.Player.UsableAce(),
		DealerUpcard: int(state.Dealer.Upcard()),
	}
	if _, err := s.index(); err != nil {
		return State{}, err
	}
	return s, nil
}

func (s State) index() (int, error) {
	if s.PlayerTotal < MinPlayerTotal || s.PlayerTotal > MaxPlayerTotal ||
		s.DealerUpcard < MinUpcard || s.DealerUpcard > MaxUpcard {
		return -1, fmt.Errorf("%w: state %+v", ErrKeyNotFound, s)
	}

	ace := 0
	if s.UsableAce {
		ace = 1
	}
	return ((s.PlayerTotal-MinPlayerTotal)*2+ace)*numUpcards + (s.DealerUpcard - MinUpcard), nil
}

func (p Pair) index() (int, error) {
	if p.Action < 0 || int(p.Action) >= game.NumActions {
		return -1, fmt.Errorf("%w: action %d", ErrKeyNotFound, p.Action)
	}
	i, err := p.State.index()
	if err != nil {
		return -1, err
	}
	return i*game.NumActions + int(p.Action), nil
}
