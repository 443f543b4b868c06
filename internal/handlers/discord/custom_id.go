package discord

import (
	"fmt"
	"strconv"
	"strings"

	rberr "github.com/venwyn/realm-bot/internal/errors"
)

// component custom IDs follow "context:action:data..." like the slash
// command routing does
const (
	contextEncounter = "encounter"
	actionChoice     = "choice"
)

// encounterChoiceID addresses one choice button of a pending encounter
type encounterChoiceID struct {
	CharacterID  string
	EncounterKey string
	ChoiceIndex  int
}

func buildEncounterChoiceID(characterID, encounterKey string, choiceIndex int) string {
	return fmt.Sprintf("%s:%s:%s:%s:%d", contextEncounter, actionChoice, characterID, encounterKey, choiceIndex)
}

func parseEncounterChoiceID(customID string) (*encounterChoiceID, error) {
	parts := strings.Split(customID, ":")
	if len(parts) != 5 || parts[0] != contextEncounter || parts[1] != actionChoice {
		return nil, rberr.InvalidArgumentf("unrecognized component ID '%s'", customID)
	}

	index, err := strconv.Atoi(parts[4])
	if err != nil {
		return nil, rberr.InvalidArgumentf("bad choice index in component ID '%s'", customID)
	}

	return &encounterChoiceID{
		CharacterID:  parts[2],
		EncounterKey: parts[3],
		ChoiceIndex:  index,
	}, nil
}
