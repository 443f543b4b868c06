package services

import (
	"github.com/venwyn/realm-bot/internal/content"
	"github.com/venwyn/realm-bot/internal/dice"
	"github.com/venwyn/realm-bot/internal/notifications"
	"github.com/venwyn/realm-bot/internal/repositories/characters"
	"github.com/venwyn/realm-bot/internal/repositories/cities"
	"github.com/venwyn/realm-bot/internal/repositories/encounters"
	"github.com/venwyn/realm-bot/internal/services/progression"
	"github.com/venwyn/realm-bot/internal/services/travel"
)

// Provider holds all service instances
type Provider struct {
	ProgressionService progression.Service
	TravelService      travel.Service

	CityRepository      cities.Repository
	EncounterRepository encounters.Repository
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	CharacterRepository characters.Repository
	Notifier            notifications.Notifier
	Roller              dice.Roller
}

// NewProvider creates a new service provider with all services initialized.
// The city and encounter repositories are seeded from the static catalog.
func NewProvider(cfg *ProviderConfig) *Provider {
	// Use in-memory repository if none provided
	charRepo := cfg.CharacterRepository
	if charRepo == nil {
		charRepo = characters.NewInMemoryRepository()
	}

	cityRepo := cities.NewInMemoryRepository(content.Cities())
	encounterRepo := encounters.NewInMemoryRepository(content.Encounters())

	progressionService := progression.NewService(&progression.ServiceConfig{
		Repository: charRepo,
		Notifier:   cfg.Notifier,
	})

	travelService := travel.NewService(&travel.ServiceConfig{
		CharacterRepository: charRepo,
		CityRepository:      cityRepo,
		EncounterRepository: encounterRepo,
		Progression:         progressionService,
		Roller:              cfg.Roller,
	})

	return &Provider{
		ProgressionService:  progressionService,
		TravelService:       travelService,
		CityRepository:      cityRepo,
		EncounterRepository: encounterRepo,
	}
}
