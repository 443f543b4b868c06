package travel

import (
	"math"

	"github.com/venwyn/realm-bot/internal/dice"
	"github.com/venwyn/realm-bot/internal/entities"
	rberr "github.com/venwyn/realm-bot/internal/errors"
)

const (
	// minimumTravelCost is charged even for zero-distance trips
	minimumTravelCost = 5

	// travelCostPerDistance scales euclidean map distance into energy
	travelCostPerDistance = 0.5
)

// ErrEmptyEncounterTable is returned when an encounter is requested from an
// empty table. Callers must guarantee a non-empty table; this is a
// programming error, never silently defaulted.
var ErrEmptyEncounterTable = rberr.InvalidArgument("encounter table is empty")

// CheckResult is the verdict of a single d20 skill check
type CheckResult struct {
	Roll     int
	Success  bool
	Critical bool
}

// ResolveCheck resolves a skill check against a difficulty. A natural 20
// always succeeds and a natural 1 always fails, regardless of skill;
// otherwise the check succeeds when roll + skill meets the difficulty.
func ResolveCheck(skillValue, difficulty int, roller dice.Roller) (*CheckResult, error) {
	roll, err := roller.Roll(dice.D20)
	if err != nil {
		return nil, rberr.Wrap(err, "failed to roll skill check")
	}

	result := &CheckResult{Roll: roll}

	switch {
	case roll == 20:
		result.Success = true
		result.Critical = true
	case roll == 1:
		result.Success = false
		result.Critical = true
	default:
		result.Success = roll+skillValue >= difficulty
	}

	return result, nil
}

// ResolveEncounterChoice runs the check for one encounter choice and picks
// the matching signed delta. The character is not mutated; the caller
// applies the delta through the progression engine.
func ResolveEncounterChoice(char *entities.Character, choice *entities.Choice, roller dice.Roller) (*entities.ResolutionOutcome, error) {
	check, err := ResolveCheck(char.SkillValue(choice.Skill), choice.Difficulty, roller)
	if err != nil {
		return nil, err
	}

	outcome := &entities.ResolutionOutcome{
		Success:  check.Success,
		Critical: check.Critical,
		Roll:     check.Roll,
	}

	if check.Success {
		outcome.AppliedDelta = choice.SuccessReward
		outcome.Text = choice.SuccessText
	} else {
		outcome.AppliedDelta = choice.FailurePenalty
		outcome.Text = choice.FailureText
	}

	return outcome, nil
}

// SelectRandomEncounter picks uniformly from a non-empty encounter table
func SelectRandomEncounter(table []*entities.Encounter, roller dice.Roller) (*entities.Encounter, error) {
	if len(table) == 0 {
		return nil, ErrEmptyEncounterTable
	}

	roll, err := roller.Roll(len(table))
	if err != nil {
		return nil, rberr.Wrap(err, "failed to roll encounter selection")
	}

	return table[roll-1], nil
}

// CalculateTravelCost returns the energy cost of traveling between two
// cities: half the euclidean map distance, floored, with a minimum charge.
// Symmetric in its arguments; a zero-distance trip still costs the minimum.
func CalculateTravelCost(from, to *entities.City) int {
	distance := math.Hypot(to.X-from.X, to.Y-from.Y)

	cost := int(math.Floor(travelCostPerDistance * distance))
	if cost < minimumTravelCost {
		return minimumTravelCost
	}
	return cost
}
