package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"github.com/exposedgame/exposed/internal/services/game"
)

// ExposedCommand handles the /exposed command
type ExposedCommand struct {
	BaseCommand
	gameService game.Service
}

// NewExposedCommand creates a new exposed command handler
func NewExposedCommand(gameService game.Service) *ExposedCommand {
	return &ExposedCommand{
		BaseCommand: BaseCommand{
			Name:        "exposed",
			Description: "Begin the Exposed: Battle of Minds game",
		},
		gameService: gameService,
	}
}

// Handle processes the /exposed slash command by firing a start event for
// the channel's session
func (c *ExposedCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}
	if i.ApplicationCommandData().Name != c.Name {
		return nil
	}

	output, err := c.gameService.HandleEvent(context.Background(), &game.HandleEventInput{
		RoomID:  i.ChannelID,
		ActorID: interactionUserID(i),
		Event:   &game.StartEvent{},
	})
	if err != nil {
		return err
	}

	return respondToInteraction(s, i, output.Render)
}

// interactionUserID extracts the acting user's ID from either a guild or a
// DM interaction
func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}
