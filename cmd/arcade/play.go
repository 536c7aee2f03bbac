package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pico-arcade/internal/config"
	"github.com/vovakirdan/pico-arcade/internal/engine"
	"github.com/vovakirdan/pico-arcade/internal/games/breakout"
	"github.com/vovakirdan/pico-arcade/internal/games/starcatcher"
	"github.com/vovakirdan/pico-arcade/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game. The game runs until X is pressed
twice within 300 ms outside its title screen.

Difficulty options:
  easy   - More lives, a wider paddle or player, slower serve
  normal - The config as written
  hard   - Fewer lives, a narrower paddle or player, faster serve
  fixed  - Star Catcher: fall speed and spawn rate never ramp up

Examples:
  arcade play breakout
  arcade play star_catcher --difficulty easy
  arcade play breakout --config ./my-breakout.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}
	if _, err := config.ParseDifficultyPreset(flagDifficulty); err != nil {
		return err
	}

	logger, closer, err := newLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	switch gameID {
	case "breakout":
		breakout.SetConfigPath(flagConfig)
		breakout.SetDifficultyPreset(flagDifficulty)
	case "star_catcher":
		starcatcher.SetConfigPath(flagConfig)
		starcatcher.SetDifficultyPreset(flagDifficulty)
	}
	checkConfigs(logger)

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	rt := runtimeConfig()
	return runHost(cmd.Context(), logger, func(ctx context.Context, dev engine.Devices) error {
		logger.Info("playing", "game", gameID)
		loop := engine.NewLoop(game, dev, logger)
		loop.Start(rt)
		return loop.Run(ctx)
	})
}

// checkConfigs reports config files that could not be used. The games fall
// back to their built-in defaults on their own.
func checkConfigs(logger *log.Logger) {
	if _, err := breakout.LoadConfig(); err != nil {
		logger.Warn("using default breakout config", "error", err)
	}
	if _, err := starcatcher.LoadConfig(); err != nil {
		logger.Warn("using default star catcher config", "error", err)
	}
}
