package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/venwyn/realm-bot/internal/entities"
	"github.com/venwyn/realm-bot/internal/services/travel"
)

const (
	colorSheet   = 0x3498DB
	colorRoad    = 0x95A5A6
	colorSuccess = 0x2ECC71
	colorFailure = 0xE74C3C
)

// buildSheetEmbed renders the character sheet with derived stats
func buildSheetEmbed(char *entities.Character) *discordgo.MessageEmbed {
	stats := char.DeriveStats()

	var skills []string
	for _, skill := range []entities.Skill{
		entities.SkillStrength,
		entities.SkillKnowledge,
		entities.SkillAgility,
		entities.SkillMagic,
	} {
		skills = append(skills, fmt.Sprintf("%s %d", titleCase(string(skill)), char.SkillValue(skill)))
	}

	var gear []string
	for _, slot := range []entities.Slot{entities.SlotWeapon, entities.SlotArmor, entities.SlotAccessory} {
		if item, ok := char.EquippedSlots[slot]; ok && item != nil {
			gear = append(gear, fmt.Sprintf("%s: %s", titleCase(string(slot)), item.Name))
		}
	}
	if len(gear) == 0 {
		gear = append(gear, "Nothing equipped")
	}

	return &discordgo.MessageEmbed{
		Title: char.Name,
		Color: colorSheet,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Level",
				Value:  fmt.Sprintf("%d (%d / %d XP)", char.Level, char.Experience, entities.ExperienceRequiredForLevel(char.Level)),
				Inline: true,
			},
			{
				Name:   "Health",
				Value:  fmt.Sprintf("%d / %d", char.Health, stats.MaxHealth),
				Inline: true,
			},
			{
				Name:   "Energy",
				Value:  fmt.Sprintf("%d / %d", char.Energy, stats.MaxEnergy),
				Inline: true,
			},
			{
				Name:   "Coins",
				Value:  fmt.Sprintf("%d", char.Coins),
				Inline: true,
			},
			{
				Name:   "Defense",
				Value:  fmt.Sprintf("%d", stats.Defense),
				Inline: true,
			},
			{
				Name:   "City",
				Value:  char.CityKey,
				Inline: true,
			},
			{
				Name:  "Skills",
				Value: strings.Join(skills, " • "),
			},
			{
				Name:  "Equipment",
				Value: strings.Join(gear, "\n"),
			},
		},
	}
}

// buildTravelEmbed summarizes a completed trip and presents the road
// encounter with one button per choice
func buildTravelEmbed(out *travel.AttemptTravelOutput) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("On the road to %s", out.City.Name),
		Description: fmt.Sprintf("The trip costs **%d energy** (%d remaining).\n\n**%s**\n%s", out.EnergyCost, out.Character.Energy, out.Encounter.Name, out.Encounter.Description),
		Color:       colorRoad,
	}

	var buttons []discordgo.MessageComponent
	for i, choice := range out.Encounter.Choices {
		buttons = append(buttons, discordgo.Button{
			Label:    choice.Label,
			Style:    discordgo.SecondaryButton,
			CustomID: buildEncounterChoiceID(out.Character.ID, out.Encounter.Key, i),
		})
	}

	return embed, []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: buttons},
	}
}

// buildOutcomeEmbed renders the resolved encounter choice
func buildOutcomeEmbed(encounter *entities.Encounter, out *travel.ResolveChoiceOutput) *discordgo.MessageEmbed {
	color := colorFailure
	verdict := "Failure"
	if out.Outcome.Success {
		color = colorSuccess
		verdict = "Success"
	}
	if out.Outcome.Critical {
		verdict = "Critical " + verdict
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s — %s", encounter.Name, verdict),
		Description: out.Outcome.Text,
		Color:       color,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Roll",
				Value:  fmt.Sprintf("d20 → %d", out.Outcome.Roll),
				Inline: true,
			},
		},
	}

	if delta := formatDelta(out.Outcome.AppliedDelta); delta != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Outcome",
			Value:  delta,
			Inline: true,
		})
	}

	for _, level := range out.Progress.LevelUps {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Level Up!",
			Value: fmt.Sprintf("%s reached level %d", out.Progress.Character.Name, level),
		})
	}

	return embed
}

// formatDelta renders the non-zero parts of a signed resource delta
func formatDelta(delta entities.ResourceDelta) string {
	var parts []string
	if delta.Gold != 0 {
		parts = append(parts, fmt.Sprintf("%+d coins", delta.Gold))
	}
	if delta.Experience != 0 {
		parts = append(parts, fmt.Sprintf("%+d XP", delta.Experience))
	}
	if delta.Health != 0 {
		parts = append(parts, fmt.Sprintf("%+d health", delta.Health))
	}
	return strings.Join(parts, ", ")
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
