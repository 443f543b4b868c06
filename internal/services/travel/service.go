package travel

//go:generate mockgen -destination=mock/mock_service.go -package=mocktravel -source=service.go

import (
	"context"

	"github.com/venwyn/realm-bot/internal/dice"
	"github.com/venwyn/realm-bot/internal/entities"
	rberr "github.com/venwyn/realm-bot/internal/errors"
	"github.com/venwyn/realm-bot/internal/repositories/characters"
	"github.com/venwyn/realm-bot/internal/repositories/cities"
	"github.com/venwyn/realm-bot/internal/repositories/encounters"
	"github.com/venwyn/realm-bot/internal/services/progression"
)

// Service resolves travel between cities and the encounters met on the way
type Service interface {
	// TravelCost returns the energy cost between two cities
	TravelCost(ctx context.Context, fromKey, toKey string) (int, error)

	// AttemptTravel moves the character to a city, charging energy and
	// rolling a road encounter
	AttemptTravel(ctx context.Context, characterID, toCityKey string) (*AttemptTravelOutput, error)

	// ResolveChoice resolves one choice of an encounter and applies the
	// outcome to the character
	ResolveChoice(ctx context.Context, characterID, encounterKey string, choiceIndex int) (*ResolveChoiceOutput, error)
}

// AttemptTravelOutput reports a completed trip and the encounter rolled on
// the road
type AttemptTravelOutput struct {
	Character  *entities.Character
	City       *entities.City
	EnergyCost int
	Encounter  *entities.Encounter
}

// ResolveChoiceOutput pairs the dice verdict with the progression result of
// applying its delta
type ResolveChoiceOutput struct {
	Outcome  *entities.ResolutionOutcome
	Progress *progression.ProgressOutput
}

// service implements the Service interface
type service struct {
	characterRepo characters.Repository
	cityRepo      cities.Repository
	encounterRepo encounters.Repository
	progression   progression.Service
	roller        dice.Roller
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	CharacterRepository characters.Repository // Required
	CityRepository      cities.Repository     // Required
	EncounterRepository encounters.Repository // Required
	Progression         progression.Service   // Required
	Roller              dice.Roller           // Optional, defaults to random
}

// NewService creates a new travel service
func NewService(cfg *ServiceConfig) Service {
	if cfg.CharacterRepository == nil {
		panic("character repository is required")
	}
	if cfg.CityRepository == nil {
		panic("city repository is required")
	}
	if cfg.EncounterRepository == nil {
		panic("encounter repository is required")
	}
	if cfg.Progression == nil {
		panic("progression service is required")
	}

	svc := &service{
		characterRepo: cfg.CharacterRepository,
		cityRepo:      cfg.CityRepository,
		encounterRepo: cfg.EncounterRepository,
		progression:   cfg.Progression,
		roller:        cfg.Roller,
	}

	if svc.roller == nil {
		svc.roller = dice.NewRandomRoller()
	}

	return svc
}

// TravelCost returns the energy cost between two cities
func (s *service) TravelCost(ctx context.Context, fromKey, toKey string) (int, error) {
	from, err := s.cityRepo.Get(ctx, fromKey)
	if err != nil {
		return 0, err
	}

	to, err := s.cityRepo.Get(ctx, toKey)
	if err != nil {
		return 0, err
	}

	return CalculateTravelCost(from, to), nil
}

// AttemptTravel moves the character to a city, charging energy and rolling
// a road encounter
func (s *service) AttemptTravel(ctx context.Context, characterID, toCityKey string) (*AttemptTravelOutput, error) {
	char, err := s.characterRepo.Get(ctx, characterID)
	if err != nil {
		return nil, err
	}

	if char.CityKey == toCityKey {
		return nil, rberr.InvalidArgumentf("character is already in '%s'", toCityKey).
			WithMeta("city_key", toCityKey)
	}

	from, err := s.cityRepo.Get(ctx, char.CityKey)
	if err != nil {
		return nil, rberr.Wrapf(err, "character '%s' is in an unknown city", characterID)
	}

	to, err := s.cityRepo.Get(ctx, toCityKey)
	if err != nil {
		return nil, err
	}

	cost := CalculateTravelCost(from, to)
	if char.Energy < cost {
		return nil, rberr.InvalidArgumentf("not enough energy: trip costs %d, have %d", cost, char.Energy).
			WithMeta("energy_cost", cost).
			WithMeta("energy", char.Energy)
	}

	char.Energy -= cost
	char.CityKey = to.Key

	if err := s.characterRepo.Update(ctx, char); err != nil {
		return nil, rberr.Wrap(err, "failed to save travel")
	}

	table, err := s.encounterRepo.List(ctx)
	if err != nil {
		return nil, rberr.Wrap(err, "failed to load encounter table")
	}

	encounter, err := SelectRandomEncounter(table, s.roller)
	if err != nil {
		return nil, err
	}

	return &AttemptTravelOutput{
		Character:  char,
		City:       to,
		EnergyCost: cost,
		Encounter:  encounter,
	}, nil
}

// ResolveChoice resolves one choice of an encounter and applies the
// outcome to the character
func (s *service) ResolveChoice(ctx context.Context, characterID, encounterKey string, choiceIndex int) (*ResolveChoiceOutput, error) {
	char, err := s.characterRepo.Get(ctx, characterID)
	if err != nil {
		return nil, err
	}

	encounter, err := s.encounterRepo.Get(ctx, encounterKey)
	if err != nil {
		return nil, err
	}

	if choiceIndex < 0 || choiceIndex >= len(encounter.Choices) {
		return nil, rberr.InvalidArgumentf("encounter '%s' has no choice %d", encounterKey, choiceIndex).
			WithMeta("encounter_key", encounterKey).
			WithMeta("choice_index", choiceIndex)
	}
	choice := &encounter.Choices[choiceIndex]

	outcome, err := ResolveEncounterChoice(char, choice, s.roller)
	if err != nil {
		return nil, err
	}

	progress, err := s.progression.ApplyOutcome(ctx, characterID, outcome.AppliedDelta)
	if err != nil {
		return nil, err
	}

	return &ResolveChoiceOutput{
		Outcome:  outcome,
		Progress: progress,
	}, nil
}
