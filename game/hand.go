package game

// Card is a card value: 1 for an ace, 2-9 at face value, 10 for tens and faces.
type Card int

const (
	Ace       Card = 1
	MaxCard   Card = 10
	aceBonus       = 10
	numRanks       = 13
)

// Hand tracks the sum of a hand with aces counted as 1, and whether it holds an
// ace that could count as 11 instead.
type Hand struct {
	Sum int
	Ace bool
}

// Add returns a copy of the hand with the card included.
func (h Hand) Add(card Card) Hand {
	return Hand{
		Sum: h.Sum + int(card),
		Ace: h.Ace || card == Ace,
	}
}

// UsableAce reports whether an ace can count as 11 without busting.
func (h Hand) UsableAce() bool {
	return h.UsableAceWithin(BlackjackLimit)
}

// Total is the best value of the hand.
func (h Hand) Total() int {
	return h.TotalWithin(BlackjackLimit)
}

// UsableAceWithin reports whether an ace can count as 11 without exceeding limit.
func (h Hand) UsableAceWithin(limit int) bool {
	return h.Ace && h.Sum+aceBonus <= limit
}

func (h Hand) TotalWithin(limit int) int {
	if h.UsableAceWithin(limit) {
		return h.Sum + aceBonus
	}
	return h.Sum
}

// Upcard is the first card of a hand, valid only while it holds a single card.
func (h Hand) Upcard() Card {
	return Card(h.Sum)
}
