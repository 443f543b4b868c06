package progression

//go:generate mockgen -destination=mock/mock_service.go -package=mockprogression -source=service.go

import (
	"context"
	"log"

	"github.com/venwyn/realm-bot/internal/entities"
	rberr "github.com/venwyn/realm-bot/internal/errors"
	"github.com/venwyn/realm-bot/internal/notifications"
	"github.com/venwyn/realm-bot/internal/repositories/characters"
	"github.com/venwyn/realm-bot/internal/uuid"
)

// starting capacities for a freshly created character
const (
	startingMaxHealth = 100
	startingMaxEnergy = 100
	startingCoins     = 50
	startingCity      = "eastford"
)

// Service owns character progression: creation, experience and level-ups,
// resource deltas from encounter outcomes, and equipment changes. Every
// write re-derives stats and persists the resulting snapshot.
type Service interface {
	// CreateCharacter creates a level-1 character for an owner
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*entities.Character, error)

	// GetCharacter retrieves a character by ID
	GetCharacter(ctx context.Context, characterID string) (*entities.Character, error)

	// ListCharacters lists all characters for an owner
	ListCharacters(ctx context.Context, ownerID string) ([]*entities.Character, error)

	// GainExperience grants experience, settling any level-ups
	GainExperience(ctx context.Context, characterID string, amount int) (*ProgressOutput, error)

	// ApplyOutcome applies a signed encounter delta to the character
	ApplyOutcome(ctx context.Context, characterID string, delta entities.ResourceDelta) (*ProgressOutput, error)

	// EquipItem equips an item template into its slot
	EquipItem(ctx context.Context, characterID string, item *entities.Item) (*entities.Character, error)

	// UnequipItem clears an equipment slot
	UnequipItem(ctx context.Context, characterID string, slot entities.Slot) (*entities.Character, error)
}

// CreateCharacterInput contains the data needed to create a character
type CreateCharacterInput struct {
	OwnerID string
	Name    string
	Skills  map[entities.Skill]int
}

// ProgressOutput is the result of a progression write
type ProgressOutput struct {
	Character *entities.Character
	Stats     entities.DerivedStats
	LevelUps  []int // levels reached during this write, in order
}

// service implements the Service interface
type service struct {
	repository    characters.Repository
	notifier      notifications.Notifier
	uuidGenerator uuid.Generator
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository    characters.Repository  // Required
	Notifier      notifications.Notifier // Optional, defaults to noop
	UUIDGenerator uuid.Generator         // Optional, defaults to google uuid
}

// NewService creates a new progression service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}

	svc := &service{
		repository:    cfg.Repository,
		notifier:      cfg.Notifier,
		uuidGenerator: cfg.UUIDGenerator,
	}

	if svc.notifier == nil {
		svc.notifier = notifications.NewNoopNotifier()
	}
	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return svc
}

// CreateCharacter creates a level-1 character for an owner
func (s *service) CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*entities.Character, error) {
	if input == nil {
		return nil, rberr.InvalidArgument("input cannot be nil")
	}
	if input.OwnerID == "" {
		return nil, rberr.InvalidArgument("owner ID is required")
	}
	if input.Name == "" {
		return nil, rberr.InvalidArgument("character name is required")
	}

	skills := input.Skills
	if skills == nil {
		skills = map[entities.Skill]int{
			entities.SkillStrength:  0,
			entities.SkillKnowledge: 0,
			entities.SkillAgility:   0,
			entities.SkillMagic:     0,
		}
	}

	char := &entities.Character{
		ID:            s.uuidGenerator.New(),
		OwnerID:       input.OwnerID,
		Name:          input.Name,
		Level:         1,
		Experience:    0,
		Coins:         startingCoins,
		BaseMaxHealth: startingMaxHealth,
		BaseMaxEnergy: startingMaxEnergy,
		Health:        startingMaxHealth,
		Energy:        startingMaxEnergy,
		Skills:        skills,
		CityKey:       startingCity,
	}

	if err := s.repository.Create(ctx, char); err != nil {
		return nil, rberr.Wrap(err, "failed to create character")
	}

	return char, nil
}

// GetCharacter retrieves a character by ID
func (s *service) GetCharacter(ctx context.Context, characterID string) (*entities.Character, error) {
	return s.repository.Get(ctx, characterID)
}

// ListCharacters lists all characters for an owner
func (s *service) ListCharacters(ctx context.Context, ownerID string) ([]*entities.Character, error) {
	return s.repository.GetByOwner(ctx, ownerID)
}

// GainExperience grants experience, settling any level-ups
func (s *service) GainExperience(ctx context.Context, characterID string, amount int) (*ProgressOutput, error) {
	char, err := s.repository.Get(ctx, characterID)
	if err != nil {
		return nil, err
	}

	result, err := char.AddExperience(amount)
	if err != nil {
		return nil, err
	}

	levelUps := s.settleLevels(char, result)

	return s.finishWrite(ctx, char, levelUps)
}

// ApplyOutcome applies a signed encounter delta to the character
func (s *service) ApplyOutcome(ctx context.Context, characterID string, delta entities.ResourceDelta) (*ProgressOutput, error) {
	char, err := s.repository.Get(ctx, characterID)
	if err != nil {
		return nil, err
	}

	result := char.ApplyResourceDelta(delta)
	levelUps := s.settleLevels(char, result)

	return s.finishWrite(ctx, char, levelUps)
}

// EquipItem equips an item template into its slot
func (s *service) EquipItem(ctx context.Context, characterID string, item *entities.Item) (*entities.Character, error) {
	char, err := s.repository.Get(ctx, characterID)
	if err != nil {
		return nil, err
	}

	if err := char.Equip(item); err != nil {
		return nil, err
	}

	if err := s.repository.Update(ctx, char); err != nil {
		return nil, rberr.Wrap(err, "failed to save equipment change")
	}

	return char, nil
}

// UnequipItem clears an equipment slot
func (s *service) UnequipItem(ctx context.Context, characterID string, slot entities.Slot) (*entities.Character, error) {
	char, err := s.repository.Get(ctx, characterID)
	if err != nil {
		return nil, err
	}

	char.Unequip(slot)

	if err := s.repository.Update(ctx, char); err != nil {
		return nil, rberr.Wrap(err, "failed to save equipment change")
	}

	return char, nil
}

// settleLevels loops the single-step level-up until the remaining
// experience no longer clears the threshold, collecting each level reached
func (s *service) settleLevels(char *entities.Character, first entities.LevelUpResult) []int {
	var levelUps []int

	result := first
	for result.LeveledUp {
		levelUps = append(levelUps, result.NewLevel)
		// zero-amount re-invocation consumes overflow experience only
		result, _ = char.AddExperience(0)
	}

	return levelUps
}

// finishWrite re-derives stats, persists the snapshot, and fires the
// notifications owed for this write
func (s *service) finishWrite(ctx context.Context, char *entities.Character, levelUps []int) (*ProgressOutput, error) {
	stats := char.DeriveStats()

	granted := s.checkAchievements(char)

	if err := s.repository.Update(ctx, char); err != nil {
		return nil, rberr.Wrap(err, "failed to save character progress")
	}

	for _, level := range levelUps {
		log.Printf("Character %s reached level %d", char.Name, level)
		s.notifier.NotifyLevelUp(ctx, &notifications.LevelUpEvent{
			CharacterName: char.Name,
			NewLevel:      level,
			BonusHealth:   entities.LevelUpHealthBonus,
			BonusEnergy:   entities.LevelUpEnergyBonus,
		})
	}

	for _, achievement := range granted {
		s.notifier.NotifyAchievement(ctx, &notifications.AchievementEvent{
			CharacterName: char.Name,
			Key:           achievement.key,
			Title:         achievement.title,
		})
	}

	return &ProgressOutput{
		Character: char,
		Stats:     stats,
		LevelUps:  levelUps,
	}, nil
}
