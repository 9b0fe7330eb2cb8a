package discord

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/exposedgame/exposed/internal/consensus"
	"github.com/exposedgame/exposed/internal/models"
	"github.com/exposedgame/exposed/internal/services/game"
)

// Bot represents the Discord bot instance
type Bot struct {
	session     *discordgo.Session
	commands    map[string]CommandHandler
	commandIDs  map[string]string // Maps command name to command ID
	gameService game.Service
	logger      zerolog.Logger
	config      *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Game service
	GameService game.Service

	// Logger for handler events
	Logger zerolog.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent

	bot := &Bot{
		session:     session,
		commands:    make(map[string]CommandHandler),
		commandIDs:  make(map[string]string),
		gameService: cfg.GameService,
		logger:      cfg.Logger,
		config:      cfg,
	}

	session.AddHandler(bot.handleInteraction)
	session.AddHandler(bot.handleMessage)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	exposedCmd := NewExposedCommand(b.gameService)
	if err := b.RegisterCommand(exposedCmd); err != nil {
		return fmt.Errorf("failed to register exposed command: %w", err)
	}

	b.logger.Info().Msg("bot is now running")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	appID := b.config.ApplicationID
	if appID == "" {
		appID = b.session.State.User.ID
	}

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.logger.Warn().Err(err).Str("command", cmdName).Msg("failed to delete command")
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	appID := b.config.ApplicationID
	if appID == "" {
		// Fall back to session user ID if application ID is not provided
		appID = b.session.State.User.ID
	}

	createdCmd, err := b.session.ApplicationCommandCreate(appID, b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.Info().Str("command", cmd.GetName()).Str("id", createdCmd.ID).Msg("registered command")

	return nil
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if h, ok := b.commands[i.ApplicationCommandData().Name]; ok {
			if err := h.Handle(s, i); err != nil {
				b.logger.Error().Err(err).
					Str("command", i.ApplicationCommandData().Name).
					Msg("error handling command")
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(s, i); err != nil {
			b.logger.Error().Err(err).Msg("error handling component interaction")
		}
	}
}

// handleComponentInteraction maps button clicks onto game events
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID

	event := eventForCustomID(customID)
	if event == nil {
		return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Unknown button: %s", customID))
	}

	output, err := b.gameService.HandleEvent(context.Background(), &game.HandleEventInput{
		RoomID:  i.ChannelID,
		ActorID: interactionUserID(i),
		Event:   event,
	})
	if err != nil {
		return err
	}

	return respondToInteraction(s, i, output.Render)
}

// eventForCustomID translates a component custom ID into a core event.
// Returns nil for IDs the bot does not own.
func eventForCustomID(customID string) game.Event {
	switch customID {
	case models.ChoiceReady, models.ChoiceStartGame:
		return &game.VoteEvent{Choice: consensus.ChoiceAffirm}
	case models.ChoiceExitWarning, models.ChoiceExitRules:
		return &game.VoteEvent{Choice: consensus.ChoiceWithdraw}
	case models.ChoiceNextQuestion:
		return &game.AdvanceEvent{}
	case models.ChoiceSkipQuestion:
		return &game.SkipEvent{}
	case models.ChoiceContinue:
		return &game.ContinueEvent{}
	}

	if cat := models.Category(customID); cat.IsValid() {
		return &game.CategoryChosenEvent{Category: cat}
	}
	return nil
}

// handleMessage maps free-text room messages onto game events: "end",
// "changecategory", a bare player count, or a mention+alias list.
func (b *Bot) handleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	content := strings.TrimSpace(m.Content)
	if content == "" {
		return
	}

	var (
		event      game.Event
		fromParser bool
	)

	switch strings.ToLower(content) {
	case "end":
		event = &game.EndEvent{}
	case "changecategory":
		event = &game.ChangeCategoryEvent{}
	default:
		if count, err := strconv.Atoi(content); err == nil {
			event = &game.CountSubmittedEvent{Count: count}
			fromParser = true
		} else if strings.Contains(content, "<@") {
			entries, err := parseNameList(content)
			if err != nil {
				b.sendText(s, m.ChannelID, nameFormatHelp)
				return
			}
			event = &game.NamesSubmittedEvent{Entries: entries}
			fromParser = true
		} else {
			// Ordinary chatter, not ours.
			return
		}
	}

	output, err := b.gameService.HandleEvent(context.Background(), &game.HandleEventInput{
		RoomID:  m.ChannelID,
		ActorID: m.Author.ID,
		Event:   event,
	})
	if err != nil {
		b.logger.Error().Err(err).Str("channel", m.ChannelID).Msg("error handling message event")
		return
	}

	// Numbers and mentions show up in normal conversation too; only guessed
	// events stay quiet when they miss the current stage.
	if fromParser && output.Render.Kind == models.RenderError &&
		output.Render.Reason == models.ReasonWrongStage {
		return
	}

	b.sendRender(s, m.ChannelID, output.Render)
}

func (b *Bot) sendText(s *discordgo.Session, channelID, text string) {
	if _, err := s.ChannelMessageSend(channelID, text); err != nil {
		b.logger.Error().Err(err).Str("channel", channelID).Msg("failed to send message")
	}
}

func (b *Bot) sendRender(s *discordgo.Session, channelID string, render *models.RenderInstruction) {
	msg := buildMessageSend(render)
	if _, err := s.ChannelMessageSendComplex(channelID, msg); err != nil {
		b.logger.Error().Err(err).Str("channel", channelID).Msg("failed to send render")
	}
}
