package mockdice

import (
	"fmt"
	"sync"
)

// ScriptedRoller implements dice.Roller for testing with predetermined results
type ScriptedRoller struct {
	mu        sync.Mutex
	rolls     []int
	rollIndex int
}

// NewScriptedRoller creates a new scripted dice roller
func NewScriptedRoller() *ScriptedRoller {
	return &ScriptedRoller{
		rolls: []int{},
	}
}

// SetNextRoll appends a roll result to the script
func (m *ScriptedRoller) SetNextRoll(roll int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = append(m.rolls, roll)
}

// SetRolls replaces the script with the given rolls
func (m *ScriptedRoller) SetRolls(rolls []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = rolls
	m.rollIndex = 0
}

// Reset clears all rolls and resets the index
func (m *ScriptedRoller) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = []int{}
	m.rollIndex = 0
}

// Roll implements dice.Roller.Roll
func (m *ScriptedRoller) Roll(sides int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.rollIndex >= len(m.rolls) {
		return 0, fmt.Errorf("no more predetermined rolls available (used %d of %d)", m.rollIndex, len(m.rolls))
	}

	roll := m.rolls[m.rollIndex]
	m.rollIndex++

	if roll < 1 || roll > sides {
		return 0, fmt.Errorf("invalid roll %d for d%d", roll, sides)
	}

	return roll, nil
}
