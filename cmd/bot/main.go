package main

import (
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/exposedgame/exposed/internal/common/clock"
	"github.com/exposedgame/exposed/internal/common/uuid"
	"github.com/exposedgame/exposed/internal/config"
	"github.com/exposedgame/exposed/internal/handlers/discord"
	"github.com/exposedgame/exposed/internal/questions"
	"github.com/exposedgame/exposed/internal/registry"
	"github.com/exposedgame/exposed/internal/rng"
	gameService "github.com/exposedgame/exposed/internal/services/game"
	"github.com/exposedgame/exposed/internal/turns"
)

func main() {
	cobra.CheckErr(newCmd().Execute())
}

func newCmd() *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:           "exposed",
		Short:         "Discord bot for the Exposed: Battle of Minds party game",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(envFile)
		},
	}

	fs := cmd.Flags()
	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})
	fs.StringVar(&envFile, "env-file", ".env", "path to an env file with EXPOSED_* variables")

	return cmd
}

func run(envFile string) error {
	// Missing .env is fine; real deployments set env vars directly.
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Str("file", envFile).Msg("could not load env file")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	random := rng.New(&rng.Config{Seed: cfg.RandSeed})

	pool, err := questions.New(&questions.Config{Rand: random})
	if err != nil {
		return err
	}

	turnEngine, err := turns.New(&turns.Config{Rand: random})
	if err != nil {
		return err
	}

	svc, err := gameService.New(&gameService.Config{
		Registry:      registry.New(),
		Pool:          pool,
		Turns:         turnEngine,
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		return err
	}

	bot, err := discord.New(&discord.Config{
		Token:         cfg.DiscordToken,
		ApplicationID: cfg.ApplicationID,
		GuildID:       cfg.GuildID,
		GameService:   svc,
		Logger:        log.Logger,
	})
	if err != nil {
		return err
	}

	if err := bot.Start(); err != nil {
		return err
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := bot.Stop(); err != nil {
		log.Error().Err(err).Msg("error stopping bot")
	}

	log.Info().Msg("bot has been shut down")
	return nil
}
