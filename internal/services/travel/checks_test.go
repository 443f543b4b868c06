package travel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mockdice "github.com/venwyn/realm-bot/internal/dice/mock"
	"github.com/venwyn/realm-bot/internal/entities"
	"github.com/venwyn/realm-bot/internal/services/travel"
	"github.com/venwyn/realm-bot/internal/testutils"
)

func rollerWith(rolls ...int) *mockdice.ScriptedRoller {
	roller := mockdice.NewScriptedRoller()
	roller.SetRolls(rolls)
	return roller
}

func TestResolveCheck_NaturalTwentyAlwaysSucceeds(t *testing.T) {
	// skill 0 against an unreachable difficulty
	result, err := travel.ResolveCheck(0, 99, rollerWith(20))
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.True(t, result.Critical)
	assert.Equal(t, 20, result.Roll)
}

func TestResolveCheck_NaturalOneAlwaysFails(t *testing.T) {
	// skill high enough that 1+skill would clear the difficulty
	result, err := travel.ResolveCheck(50, 8, rollerWith(1))
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.True(t, result.Critical)
}

func TestResolveCheck_ThresholdIsInclusive(t *testing.T) {
	tests := []struct {
		name       string
		roll       int
		skill      int
		difficulty int
		want       bool
	}{
		{name: "exactly meets difficulty", roll: 5, skill: 5, difficulty: 10, want: true},
		{name: "one short", roll: 5, skill: 5, difficulty: 11, want: false},
		{name: "clears difficulty", roll: 15, skill: 2, difficulty: 10, want: true},
		{name: "no skill", roll: 5, skill: 0, difficulty: 10, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := travel.ResolveCheck(tt.skill, tt.difficulty, rollerWith(tt.roll))
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Success)
			assert.False(t, result.Critical)
		})
	}
}

func TestResolveCheck_RollerFailure(t *testing.T) {
	_, err := travel.ResolveCheck(5, 10, mockdice.NewScriptedRoller())
	assert.Error(t, err)
}

func TestResolveEncounterChoice_SuccessPicksReward(t *testing.T) {
	char := testutils.CreateTestCharacter("char-1", "user-1", "Theron")
	encounter := testutils.CreateTestEncounter("collapsed-bridge")
	choice := &encounter.Choices[0] // agility 4 vs difficulty 12

	outcome, err := travel.ResolveEncounterChoice(char, choice, rollerWith(10))
	require.NoError(t, err)

	assert.True(t, outcome.Success, "10+4 meets 12")
	assert.Equal(t, choice.SuccessReward, outcome.AppliedDelta)
	assert.Equal(t, choice.SuccessText, outcome.Text)
}

func TestResolveEncounterChoice_FailurePicksPenalty(t *testing.T) {
	char := testutils.CreateTestCharacter("char-1", "user-1", "Theron")
	encounter := testutils.CreateTestEncounter("collapsed-bridge")
	choice := &encounter.Choices[0]

	outcome, err := travel.ResolveEncounterChoice(char, choice, rollerWith(3))
	require.NoError(t, err)

	assert.False(t, outcome.Success)
	assert.Equal(t, choice.FailurePenalty, outcome.AppliedDelta)
	assert.Equal(t, choice.FailureText, outcome.Text)
}

func TestResolveEncounterChoice_MissingSkillDefaultsToZero(t *testing.T) {
	char := testutils.CreateTestCharacter("char-1", "user-1", "Theron")
	char.Skills = nil

	choice := &entities.Choice{
		Skill:         entities.SkillMagic,
		Difficulty:    10,
		SuccessReward: entities.ResourceDelta{Experience: 10},
	}

	outcome, err := travel.ResolveEncounterChoice(char, choice, rollerWith(10))
	require.NoError(t, err)
	assert.True(t, outcome.Success, "10+0 meets 10")

	outcome, err = travel.ResolveEncounterChoice(char, choice, rollerWith(9))
	require.NoError(t, err)
	assert.False(t, outcome.Success)
}

func TestResolveEncounterChoice_OutcomeDoesNotMutateCharacter(t *testing.T) {
	char := testutils.CreateTestCharacter("char-1", "user-1", "Theron")
	before := char.Clone()

	encounter := testutils.CreateTestEncounter("collapsed-bridge")
	_, err := travel.ResolveEncounterChoice(char, &encounter.Choices[0], rollerWith(18))
	require.NoError(t, err)

	assert.Equal(t, before, char)
}

func TestSelectRandomEncounter(t *testing.T) {
	table := []*entities.Encounter{
		testutils.CreateTestEncounter("first"),
		testutils.CreateTestEncounter("second"),
		testutils.CreateTestEncounter("third"),
	}

	// the roller is asked for a d(len(table)); roll N selects entry N-1
	selected, err := travel.SelectRandomEncounter(table, rollerWith(1))
	require.NoError(t, err)
	assert.Equal(t, "first", selected.Key)

	selected, err = travel.SelectRandomEncounter(table, rollerWith(3))
	require.NoError(t, err)
	assert.Equal(t, "third", selected.Key)
}

func TestSelectRandomEncounter_EmptyTableFailsLoudly(t *testing.T) {
	_, err := travel.SelectRandomEncounter(nil, rollerWith(1))
	require.Error(t, err)
	assert.ErrorIs(t, err, travel.ErrEmptyEncounterTable)

	_, err = travel.SelectRandomEncounter([]*entities.Encounter{}, rollerWith(1))
	assert.ErrorIs(t, err, travel.ErrEmptyEncounterTable)
}

func TestCalculateTravelCost(t *testing.T) {
	tests := []struct {
		name string
		from *entities.City
		to   *entities.City
		want int
	}{
		{
			name: "zero distance still costs the minimum",
			from: &entities.City{Key: "a", X: 0, Y: 0},
			to:   &entities.City{Key: "b", X: 0, Y: 0},
			want: 5,
		},
		{
			name: "full map width",
			from: &entities.City{Key: "a", X: 0, Y: 0},
			to:   &entities.City{Key: "b", X: 100, Y: 0},
			want: 50,
		},
		{
			name: "short trip floors up to the minimum",
			from: &entities.City{Key: "a", X: 0, Y: 0},
			to:   &entities.City{Key: "b", X: 3, Y: 4},
			want: 5,
		},
		{
			name: "fraction is floored",
			from: &entities.City{Key: "a", X: 0, Y: 0},
			to:   &entities.City{Key: "b", X: 0, Y: 15},
			want: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, travel.CalculateTravelCost(tt.from, tt.to))
			assert.Equal(t, tt.want, travel.CalculateTravelCost(tt.to, tt.from), "cost must be symmetric")
		})
	}
}
