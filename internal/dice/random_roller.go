package dice

import (
	"errors"
	"math/rand"
)

// randomRoller implements Roller using math/rand
type randomRoller struct{}

// NewRandomRoller creates a new random dice roller
func NewRandomRoller() Roller {
	return &randomRoller{}
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(sides int) (int, error) {
	if sides < 1 {
		return 0, errors.New("invalid dice size")
	}

	return rand.Intn(sides) + 1, nil
}
