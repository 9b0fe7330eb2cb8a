package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/exposedgame/exposed/internal/models"
)

// embedColor is Discord blurple, used for every game embed
const embedColor = 0x5865f2

// buttonFor maps a core choice ID to its button
func buttonFor(choiceID string) discordgo.Button {
	switch choiceID {
	case models.ChoiceReady:
		return discordgo.Button{Label: "I'M READY 🔥", Style: discordgo.DangerButton, CustomID: choiceID}
	case models.ChoiceExitWarning, models.ChoiceExitRules:
		return discordgo.Button{Label: "EXIT ❌", Style: discordgo.SecondaryButton, CustomID: choiceID}
	case models.ChoiceStartGame:
		return discordgo.Button{Label: "START GAME ▶️", Style: discordgo.PrimaryButton, CustomID: choiceID}
	case models.ChoiceNextQuestion:
		return discordgo.Button{Label: "▶️ Next Question", Style: discordgo.PrimaryButton, CustomID: choiceID}
	case models.ChoiceSkipQuestion:
		return discordgo.Button{Label: "⏭️ Skip & Get Dare", Style: discordgo.SecondaryButton, CustomID: choiceID}
	case models.ChoiceContinue:
		return discordgo.Button{Label: "▶️ Continue", Style: discordgo.PrimaryButton, CustomID: choiceID}
	case string(models.CategoryExtreme):
		return discordgo.Button{Label: "Extreme 18+ 🔞", Style: discordgo.DangerButton, CustomID: choiceID}
	case string(models.CategoryAdult):
		return discordgo.Button{Label: "18+ 🔥", Style: discordgo.PrimaryButton, CustomID: choiceID}
	case string(models.CategoryLife):
		return discordgo.Button{Label: "Life 🎭", Style: discordgo.SecondaryButton, CustomID: choiceID}
	case string(models.CategoryAll):
		return discordgo.Button{Label: "All Categories 🎲", Style: discordgo.SuccessButton, CustomID: choiceID}
	default:
		return discordgo.Button{Label: choiceID, Style: discordgo.SecondaryButton, CustomID: choiceID}
	}
}

func componentRows(choices []string) []discordgo.MessageComponent {
	if len(choices) == 0 {
		return nil
	}

	buttons := make([]discordgo.MessageComponent, 0, len(choices))
	for _, choice := range choices {
		buttons = append(buttons, buttonFor(choice))
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: buttons},
	}
}

func renderEmbed(render *models.RenderInstruction) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       render.Title,
		Description: render.Body,
		Color:       embedColor,
	}
}

// buildMessageSend turns a render instruction into a channel message
func buildMessageSend(render *models.RenderInstruction) *discordgo.MessageSend {
	return &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{renderEmbed(render)},
		Components: componentRows(render.Choices),
	}
}

// respondToInteraction presents a render instruction as the interaction
// response. Ephemeral renders go only to the acting user; vote-progress
// screens update the message the button lives on; everything else is a new
// message in the channel.
func respondToInteraction(s *discordgo.Session, i *discordgo.InteractionCreate, render *models.RenderInstruction) error {
	if render.Ephemeral {
		return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Embeds: []*discordgo.MessageEmbed{renderEmbed(render)},
				Flags:  discordgo.MessageFlagsEphemeral,
			},
		})
	}

	responseType := discordgo.InteractionResponseChannelMessageWithSource
	if i.Type == discordgo.InteractionMessageComponent && updatesInPlace(render.Kind) {
		responseType = discordgo.InteractionResponseUpdateMessage
	}

	components := componentRows(render.Choices)
	if components == nil {
		// Explicitly empty so an update clears the old buttons.
		components = []discordgo.MessageComponent{}
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: responseType,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{renderEmbed(render)},
			Components: components,
		},
	})
}

// updatesInPlace reports whether the screen should replace the message the
// clicked button belongs to instead of posting a new one
func updatesInPlace(kind models.RenderKind) bool {
	switch kind {
	case models.RenderWarning, models.RenderRules, models.RenderCategorySelect, models.RenderTerminated:
		return true
	default:
		return false
	}
}
