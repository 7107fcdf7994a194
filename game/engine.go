package game

import "github.com/rs/zerolog/log"

// StandardEngine plays hands against a dealer drawing from an infinite deck.
type StandardEngine struct {
	rules  Rules
	source Source
}

var _ Engine = &StandardEngine{}

func NewStandardEngine(rules Rules, source Source) *StandardEngine {
	if rules == nil {
		panic("rules cannot be nil")
	}
	if source == nil {
		panic("source cannot be nil")
	}
	return &StandardEngine{rules: rules, source: source}
}

func (e *StandardEngine) NewHand() State {
	player := Hand{}.Add(e.DrawCard()).Add(e.DrawCard())
	dealer := Hand{}.Add(e.DrawCard())

	status := InProgress
	if e.total(player) == e.rules.Limit() { // Natural
		status = Win
	}
	return State{Player: player, Dealer: dealer, Status: status}
}

func (e *StandardEngine) DrawCard() Card {
	// Jack, queen and king count as ten
	card := Card(e.source.Intn(numRanks) + 1)
	return min(card, MaxCard)
}

func (e *StandardEngine) ApplyCard(hand Hand, card Card) Hand {
	return hand.Add(card)
}

func (e *StandardEngine) Advance(state State, action Action) State {
	if state.Status.IsTerminal() {
		log.Warn().Msgf("advancing a concluded hand with status %s", state.Status)
		return state
	}

	switch action {
	case Stick:
		return e.stick(state)
	case Hit:
		return e.hit(state)
	default:
		panic("unexpected action")
	}
}

func (e *StandardEngine) stick(state State) State {
	dealer := e.playDealer(state.Dealer)
	player := e.total(state.Player)
	house := e.total(dealer)

	status := Loss
	switch {
	case house > e.rules.Limit() || house < player:
		status = Win
	case house == player:
		status = Draw
	}
	return State{Player: state.Player, Dealer: dealer, Status: status}
}

func (e *StandardEngine) hit(state State) State {
	player := e.ApplyCard(state.Player, e.DrawCard())
	total := e.total(player)

	switch {
	case total > e.rules.Limit():
		return State{Player: player, Dealer: state.Dealer, Status: Loss}
	case total == e.rules.Limit():
		// The dealer can only push a player who reached the limit
		dealer := e.playDealer(state.Dealer)
		status := Win
		if e.total(dealer) == e.rules.Limit() {
			status = Draw
		}
		return State{Player: player, Dealer: dealer, Status: status}
	default:
		return State{Player: player, Dealer: state.Dealer, Status: InProgress}
	}
}

func (e *StandardEngine) playDealer(dealer Hand) Hand {
	for e.total(dealer) < e.rules.DealerStandsOn() {
		dealer = e.ApplyCard(dealer, e.DrawCard())
	}
	return dealer
}

// total values a hand against the engine's limit.
func (e *StandardEngine) total(hand Hand) int {
	return hand.TotalWithin(e.rules.Limit())
}
