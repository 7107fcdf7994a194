package learner

import (
	"blackjack/game"
	"fmt"
)

// Reward maps the outcome of a concluded hand to a scalar.
func Reward(status game.Status) (float64, error) {
	switch status {
	case game.Win:
		return WIN, nil
	case game.Draw:
		return DRAW, nil
	case game.Loss:
		return LOSS, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}
}
