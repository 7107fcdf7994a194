package game

type StandardRules struct {
	DealerStand int
	Bust        int
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		DealerStand: 17,
		Bust:        BlackjackLimit,
	}
}

func (sr *StandardRules) DealerStandsOn() int {
	return sr.DealerStand
}

func (sr *StandardRules) Limit() int {
	return sr.Bust
}
