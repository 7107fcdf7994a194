package game

const BlackjackLimit = 21

type Rules interface {
	// DealerStandsOn is the total at which the dealer stops drawing
	DealerStandsOn() int
	// Limit is the highest total that does not bust
	Limit() int
}
