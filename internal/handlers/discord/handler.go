// Package discord wires the slash command surface to the game services.
// Commands are grouped under a single /realm command; encounter choices
// come back as message component interactions.
package discord

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/venwyn/realm-bot/internal/entities"
	rberr "github.com/venwyn/realm-bot/internal/errors"
	"github.com/venwyn/realm-bot/internal/services"
	"github.com/venwyn/realm-bot/internal/services/progression"
)

// Handler handles all Discord interactions
type Handler struct {
	ServiceProvider *services.Provider
}

// HandlerConfig holds configuration for the Discord handler
type HandlerConfig struct {
	ServiceProvider *services.Provider
}

// NewHandler creates a new Discord handler
func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg.ServiceProvider == nil {
		panic("service provider is required")
	}
	return &Handler{ServiceProvider: cfg.ServiceProvider}
}

// RegisterCommands registers all slash commands with Discord
func (h *Handler) RegisterCommands(s *discordgo.Session, guildID string) error {
	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "realm",
			Description: "Realm adventure commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "character",
					Description: "Character management commands",
					Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Name:        "create",
							Description: "Create a new character",
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Options: []*discordgo.ApplicationCommandOption{
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "name",
									Description: "Character name",
									Required:    true,
								},
							},
						},
						{
							Name:        "sheet",
							Description: "Show your character sheet",
							Type:        discordgo.ApplicationCommandOptionSubCommand,
						},
						{
							Name:        "list",
							Description: "List all your characters",
							Type:        discordgo.ApplicationCommandOptionSubCommand,
						},
					},
				},
				{
					Name:        "travel",
					Description: "Travel to another city",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "destination",
							Description: "City to travel to",
							Required:    true,
						},
					},
				},
				{
					Name:        "map",
					Description: "Show the world map and travel costs",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
				},
			},
		},
	}

	for _, cmd := range commands {
		_, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, cmd)
		if err != nil {
			return fmt.Errorf("failed to create command %s: %w", cmd.Name, err)
		}
		log.Printf("Registered command: %s", cmd.Name)
	}

	return nil
}

// HandleInteraction handles all Discord interactions
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		h.handleCommand(s, i)
	case discordgo.InteractionMessageComponent:
		h.handleComponent(s, i)
	}
}

// handleCommand handles slash command interactions
func (h *Handler) handleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	if data.Name != "realm" || len(data.Options) == 0 {
		return
	}

	ctx := context.Background()
	top := data.Options[0]

	switch top.Name {
	case "character":
		if len(top.Options) == 0 {
			return
		}
		sub := top.Options[0]
		switch sub.Name {
		case "create":
			h.handleCharacterCreate(ctx, s, i, sub)
		case "sheet":
			h.handleCharacterSheet(ctx, s, i)
		case "list":
			h.handleCharacterList(ctx, s, i)
		}
	case "travel":
		h.handleTravel(ctx, s, i, top)
	case "map":
		h.handleMap(ctx, s, i)
	}
}

// handleComponent handles message component interactions
func (h *Handler) handleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	choiceID, err := parseEncounterChoiceID(i.MessageComponentData().CustomID)
	if err != nil {
		log.Printf("Ignoring component interaction: %v", err)
		return
	}

	ctx := context.Background()

	out, err := h.ServiceProvider.TravelService.ResolveChoice(ctx, choiceID.CharacterID, choiceID.EncounterKey, choiceID.ChoiceIndex)
	if err != nil {
		h.respondError(s, i, err)
		return
	}

	encounter, err := h.ServiceProvider.EncounterRepository.Get(ctx, choiceID.EncounterKey)
	if err != nil {
		h.respondError(s, i, err)
		return
	}

	// replace the choice buttons with the verdict
	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{buildOutcomeEmbed(encounter, out)},
			Components: []discordgo.MessageComponent{},
		},
	})
	if err != nil {
		log.Printf("Failed to respond to encounter choice: %v", err)
	}
}

func (h *Handler) handleCharacterCreate(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) {
	var name string
	for _, opt := range sub.Options {
		if opt.Name == "name" {
			name = opt.StringValue()
		}
	}

	char, err := h.ServiceProvider.ProgressionService.CreateCharacter(ctx, &progression.CreateCharacterInput{
		OwnerID: interactionUserID(i),
		Name:    name,
	})
	if err != nil {
		h.respondError(s, i, err)
		return
	}

	h.respondEmbed(s, i, buildSheetEmbed(char))
}

func (h *Handler) handleCharacterSheet(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	char, err := h.activeCharacter(ctx, i)
	if err != nil {
		h.respondError(s, i, err)
		return
	}

	h.respondEmbed(s, i, buildSheetEmbed(char))
}

func (h *Handler) handleCharacterList(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	chars, err := h.ServiceProvider.ProgressionService.ListCharacters(ctx, interactionUserID(i))
	if err != nil {
		h.respondError(s, i, err)
		return
	}

	if len(chars) == 0 {
		h.respondText(s, i, "You have no characters yet. Use `/realm character create` to make one.")
		return
	}

	content := "Your characters:\n"
	for _, char := range chars {
		content += fmt.Sprintf("• **%s** — level %d, in %s\n", char.Name, char.Level, char.CityKey)
	}
	h.respondText(s, i, content)
}

func (h *Handler) handleTravel(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, top *discordgo.ApplicationCommandInteractionDataOption) {
	var destination string
	for _, opt := range top.Options {
		if opt.Name == "destination" {
			destination = opt.StringValue()
		}
	}

	char, err := h.activeCharacter(ctx, i)
	if err != nil {
		h.respondError(s, i, err)
		return
	}

	out, err := h.ServiceProvider.TravelService.AttemptTravel(ctx, char.ID, destination)
	if err != nil {
		h.respondError(s, i, err)
		return
	}

	embed, components := buildTravelEmbed(out)
	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
		},
	})
	if err != nil {
		log.Printf("Failed to respond to travel command: %v", err)
	}
}

func (h *Handler) handleMap(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	cities, err := h.ServiceProvider.CityRepository.List(ctx)
	if err != nil {
		h.respondError(s, i, err)
		return
	}

	char, err := h.activeCharacter(ctx, i)
	if err != nil {
		h.respondError(s, i, err)
		return
	}

	content := fmt.Sprintf("You are in **%s**. Travel costs:\n", char.CityKey)
	for _, city := range cities {
		if city.Key == char.CityKey {
			continue
		}
		cost, costErr := h.ServiceProvider.TravelService.TravelCost(ctx, char.CityKey, city.Key)
		if costErr != nil {
			h.respondError(s, i, costErr)
			return
		}
		content += fmt.Sprintf("• **%s** (`%s`) — %d energy\n", city.Name, city.Key, cost)
	}
	h.respondText(s, i, content)
}

// activeCharacter resolves the invoking user's character. Each owner plays
// one character at a time; the first one wins.
func (h *Handler) activeCharacter(ctx context.Context, i *discordgo.InteractionCreate) (*entities.Character, error) {
	chars, err := h.ServiceProvider.ProgressionService.ListCharacters(ctx, interactionUserID(i))
	if err != nil {
		return nil, err
	}
	if len(chars) == 0 {
		return nil, rberr.NotFound("you have no character yet, use `/realm character create` first")
	}
	return chars[0], nil
}

// interactionUserID extracts the invoking user's ID from a guild or DM
// interaction
func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

func (h *Handler) respondEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
	if err != nil {
		log.Printf("Failed to respond with embed: %v", err)
	}
}

func (h *Handler) respondText(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("Failed to respond with text: %v", err)
	}
}

// respondError maps service errors onto an ephemeral reply
func (h *Handler) respondError(s *discordgo.Session, i *discordgo.InteractionCreate, cause error) {
	content := "Something went wrong."
	if rberr.IsNotFound(cause) || rberr.IsInvalidArgument(cause) {
		content = cause.Error()
	} else {
		log.Printf("Interaction failed: %v", cause)
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("Failed to respond with error: %v", err)
	}
}
