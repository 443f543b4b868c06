package dice

// D20 is the die every skill check in the game is resolved on
const D20 = 20

// Roller provides an interface for rolling dice
// This allows us to inject different implementations for testing
type Roller interface {
	// Roll returns a uniformly distributed integer in [1, sides]
	Roll(sides int) (int, error)
}
